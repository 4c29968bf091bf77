package log

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// TileStat describes one worker's contribution to a completed render, used
// to render the post-render summary table.
type TileStat struct {
	Worker     int
	TilesDone  int
	RaysCast   int64
	RenderTime time.Duration
}

// RenderStats is the full set of statistics gathered across a render,
// logged via Notice once the render completes.
type RenderStats struct {
	Width, Height int
	TileSize      int
	Workers       []TileStat
	TotalTime     time.Duration
}

// LogRenderStats formats stats as a table and writes it to logger at
// Notice level.
func LogRenderStats(logger Logger, stats RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Tiles", "Rays cast", "Time"})

	var totalTiles int
	var totalRays int64
	for _, w := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", w.Worker),
			fmt.Sprintf("%d", w.TilesDone),
			fmt.Sprintf("%d", w.RaysCast),
			w.RenderTime.String(),
		})
		totalTiles += w.TilesDone
		totalRays += w.RaysCast
	}
	table.SetFooter([]string{"", fmt.Sprintf("%d", totalTiles), fmt.Sprintf("%d", totalRays), stats.TotalTime.String()})
	table.Render()

	logger.Noticef(
		"render finished: %dx%d image, %d-pixel tiles, %d workers\n%s",
		stats.Width, stats.Height, stats.TileSize, len(stats.Workers), buf.String(),
	)
}
