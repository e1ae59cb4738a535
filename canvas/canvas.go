package canvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/achilleasa/sunhouse/types"
)

// A Canvas stores linear, unclamped RGB values for a width x height frame
// in row-major order.
type Canvas struct {
	width  int
	height int
	pixels []types.Color
}

// Create a new canvas with all pixels set to black.
func New(width, height int) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("canvas: invalid dimensions %dx%d", width, height))
	}
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]types.Color, width*height),
	}
}

func (c *Canvas) Width() int  { return c.width }
func (c *Canvas) Height() int { return c.height }

// Set pixel color. Coordinates outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, col types.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// Get pixel color. Coordinates outside the canvas yield black.
func (c *Canvas) At(x, y int) types.Color {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return types.Black
	}
	return c.pixels[y*c.width+x]
}

// Convert to an 8-bit RGBA image, clamping each component to [0, 1].
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			col := c.pixels[y*c.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: toByte(col[0]),
				G: toByte(col[1]),
				B: toByte(col[2]),
				A: 255,
			})
		}
	}
	return img
}

// Clamp a linear component to [0, 1] and scale it to [0, 255].
func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
