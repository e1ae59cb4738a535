package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/achilleasa/sunhouse/canvas"
	"github.com/achilleasa/sunhouse/renderer"
	"github.com/achilleasa/sunhouse/scene/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	opts := renderer.Options{
		FrameW: ctx.Int("width"),
		FrameH: ctx.Int("height"),
		BlockH: ctx.Int("block-height"),
	}

	// Load scene
	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	// Abort rendering on ctrl+c
	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return renderFrame(renderCtx, ctx.Args().First(), ctx.String("out"), opts)
}

func renderFrame(ctx context.Context, sceneFile, outFile string, opts renderer.Options) error {
	sc, err := reader.ReadScene(sceneFile)
	if err != nil {
		return err
	}

	r, err := renderer.NewDefault(sc, opts)
	if err != nil {
		return err
	}

	img, err := r.Render(ctx)
	if err != nil {
		return err
	}

	// Display stats
	displayFrameStats(r.Stats())

	if err = canvas.Save(img, outFile); err != nil {
		return err
	}
	logger.Noticef(`saved frame to "%s"`, outFile)

	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	logger.Noticef("frame statistics\n%s", frameStatsTable(stats))
}

func frameStatsTable(stats renderer.FrameStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Block", "First row", "Block height", "% of frame", "Clipped", "Render time"})
	for idx, stat := range stats.Blocks {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%d", stat.BlockY),
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			fmt.Sprintf("%d", stat.Clipped),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{
		stats.ID,
		fmt.Sprintf("%dx%d", stats.FrameW, stats.FrameH),
		fmt.Sprintf("%d objects", stats.Objects),
		fmt.Sprintf("%d lights", stats.Lights),
		"",
		stats.RenderTime.String(),
	})

	table.Render()
	return buf.String()
}
