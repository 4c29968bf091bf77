package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/cosmcif/raytracer/imageio"
	"github.com/cosmcif/raytracer/log"
	"github.com/cosmcif/raytracer/render"
	"github.com/cosmcif/raytracer/scenes"
)

const defaultOutputPath = "render.ppm"

// RenderScene resolves the named built-in scene, renders it with the
// options carried by ctx's flags, and writes the result to the optional
// positional output path (defaultOutputPath if omitted).
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	name := ctx.String("scene")
	builder, ok := scenes.Get(name)
	if !ok {
		return render.NewConfigError("RenderScene", fmt.Errorf(`unknown scene %q; run "goray scenes" to list available scenes`, name))
	}

	sc, cam := builder()

	opts := render.DefaultOptions()
	opts.Width, opts.Height = cam.Width, cam.Height
	opts.FOV = cam.FOV

	if w, h := ctx.Int("width"), ctx.Int("height"); w > 0 && h > 0 {
		opts.Width, opts.Height = w, h
		cam.Resize(w, h)
	}
	if ts := ctx.Int("tile-size"); ts > 0 {
		opts.TileSize = ts
	}
	if workers := ctx.Int("workers"); workers > 0 {
		opts.Workers = workers
	}
	if ctx.IsSet("bounces") {
		if depth := ctx.Int("bounces"); depth >= 0 {
			opts.BounceDepth = depth
		}
	}

	if err := opts.Validate(); err != nil {
		return err
	}

	out := defaultOutputPath
	if ctx.NArg() > 0 {
		out = ctx.Args().First()
	}

	logger.Noticef(`rendering scene %q to %s`, name, out)
	start := time.Now()
	img, stats := render.Render(sc, cam, opts)
	log.LogRenderStats(logger, stats)

	if err := imageio.WritePPMFile(out, img); err != nil {
		return render.NewIOError("RenderScene", err)
	}
	logger.Noticef("wrote %s in %s", out, time.Since(start))

	return nil
}
