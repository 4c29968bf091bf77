package cmd

import (
	"errors"

	"github.com/cosmcif/raytracer/log"
	"github.com/cosmcif/raytracer/render"
	"github.com/urfave/cli"
)

var logger = log.New("goray")

// Process exit codes. A render.RenderError's Kind picks between the two
// failure codes so a caller scripting this CLI can tell a bad flag/scene
// name apart from a resource it could not read.
const (
	exitOK = iota
	exitConfigError
	exitIOError
	exitUnknownError
)

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// ExitCode maps an error returned from a command Action to a process exit
// code: nil succeeds, a render.RenderError's Kind picks the failure code,
// anything else is an unclassified error.
func ExitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var renderErr *render.RenderError
	if !errors.As(err, &renderErr) {
		return exitUnknownError
	}
	switch renderErr.Kind {
	case render.ConfigError:
		return exitConfigError
	case render.IOError:
		return exitIOError
	default:
		return exitUnknownError
	}
}
