package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/achilleasa/sunhouse/scene"
	"github.com/achilleasa/sunhouse/scene/reader"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sceneInfo(sc))
	return nil
}

func sceneInfo(sc *scene.Scene) string {
	var buf bytes.Buffer

	cam := sc.Camera
	fmt.Fprintf(&buf, "camera: %dx%d, fov %.1f deg\n", cam.HSize(), cam.VSize(), cam.FieldOfView()*180/math.Pi)

	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Object", "Type", "Color", "Ambient", "Diffuse", "Specular", "Shininess"})
	for idx, obj := range sc.World.Objects {
		mat := obj.Material()
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			objectType(obj),
			fmt.Sprintf("%.2f %.2f %.2f", mat.Color.R(), mat.Color.G(), mat.Color.B()),
			fmt.Sprintf("%.2f", mat.Ambient),
			fmt.Sprintf("%.2f", mat.Diffuse),
			fmt.Sprintf("%.2f", mat.Specular),
			fmt.Sprintf("%.1f", mat.Shininess),
		})
	}
	table.Render()

	table = tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Light", "Position", "Intensity"})
	for idx, light := range sc.World.Lights {
		table.Append([]string{
			fmt.Sprintf("%d", idx),
			fmt.Sprintf("%.2f %.2f %.2f", light.Position.X(), light.Position.Y(), light.Position.Z()),
			fmt.Sprintf("%.2f %.2f %.2f", light.Intensity.R(), light.Intensity.G(), light.Intensity.B()),
		})
	}
	table.Render()

	return buf.String()
}

func objectType(obj scene.Object) string {
	switch obj.(type) {
	case *scene.Sphere:
		return "sphere"
	case *scene.Plane:
		return "plane"
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", obj), "*")
}
