package types

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// A linear RGB radiance triple. Components are not clamped.
type Color f64.Vec3

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Define a color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

func (c Color) R() float64 { return c[0] }
func (c Color) G() float64 { return c[1] }
func (c Color) B() float64 { return c[2] }

// Add a color.
func (c Color) Add(c2 Color) Color {
	return Color{c[0] + c2[0], c[1] + c2[1], c[2] + c2[2]}
}

// Subtract a color.
func (c Color) Sub(c2 Color) Color {
	return Color{c[0] - c2[0], c[1] - c2[1], c[2] - c2[2]}
}

// Scale color components.
func (c Color) Mul(s float64) Color {
	return Color{c[0] * s, c[1] * s, c[2] * s}
}

// Multiply colors component-wise.
func (c Color) Blend(c2 Color) Color {
	return Color{c[0] * c2[0], c[1] * c2[1], c[2] * c2[2]}
}

// Get the largest component.
func (c Color) MaxComponent() float64 {
	m := c[0]
	if c[1] > m {
		m = c[1]
	}
	if c[2] > m {
		m = c[2]
	}
	return m
}

// Compare two colors using a fixed tolerance.
func (c Color) ApproxEqual(c2 Color) bool {
	return FloatEqual(c[0], c2[0]) && FloatEqual(c[1], c2[1]) && FloatEqual(c[2], c2[2])
}

func (c Color) String() string {
	return fmt.Sprintf("color(%g, %g, %g)", c[0], c[1], c[2])
}
