package scene

import (
	"fmt"

	"github.com/achilleasa/sunhouse/types"
)

// A point light source without size.
type PointLight struct {
	Position  types.Point
	Intensity types.Color
}

func NewPointLight(position types.Point, intensity types.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

func (l PointLight) String() string {
	return fmt.Sprintf("light(%v, %v)", l.Position, l.Intensity)
}
