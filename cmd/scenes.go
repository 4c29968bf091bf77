package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/cosmcif/raytracer/scenes"
)

// ListScenes prints the names of the built-in scenes a user can pass to
// render, in the same spot a device inventory would go if this renderer
// dispatched work to hardware instead of building geometry in-process.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene"})
	for _, name := range scenes.Names() {
		table.Append([]string{name})
	}
	table.Render()

	logger.Noticef("available scenes\n%s", buf.String())
	fmt.Print(buf.String())

	return nil
}
