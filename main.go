package main

import (
	"os"

	"github.com/achilleasa/sunhouse/cmd"
	"github.com/achilleasa/sunhouse/renderer"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "sunhouse"
	app.Usage = "render scenes using ray tracing"
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
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set log level (debug, info, notice, warning, error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Parse a text scene definition, trace one ray per pixel and shade the nearest
hit using the Phong reflection model with hard shadows.

The frame is written as a png or ppm image depending on the extension of the
output file.`,
			ArgsUsage: "scene_file.scene",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 0,
					Usage: "frame width (defaults to the scene camera width)",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 0,
					Usage: "frame height (defaults to the scene camera height)",
				},
				cli.IntFlag{
					Name:  "block-height",
					Value: renderer.DefaultBlockH,
					Usage: "number of rows to render between progress updates",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "info",
			Usage:     "display scene information",
			ArgsUsage: "scene_file.scene",
			Action:    cmd.ShowSceneInfo,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
