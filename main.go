package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/cosmcif/raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "goray"
	app.Usage = "render 3D scenes to images with a recursive ray tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "render",
			Usage:     "render a built-in scene to a PPM image",
			ArgsUsage: "[output_path]",
			Description: `
Render one of the built-in scenes (see "goray scenes" for the list) and
write the result as a binary PPM image. The output path is optional and
defaults to render.ppm.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "red-sphere",
					Usage: "name of the built-in scene to render",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "override the scene's default image width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "override the scene's default image height",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 16,
					Usage: "square tile size used to partition the work queue",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of rendering goroutines (default: number of CPUs)",
				},
				cli.IntFlag{
					Name:  "bounces",
					Value: 3,
					Usage: "maximum recursive reflection/refraction depth",
				},
			},
			Action: cmd.RenderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes available to render",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCode(err))
	}
}
