package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/sunhouse/types"
)

// Defines the Phong reflectance parameters of a surface.
type Material struct {
	Color     types.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Get the default material: white, ambient 0.1, diffuse 0.9, specular 0.9
// and shininess 200.
func DefaultMaterial() Material {
	return Material{
		Color:     types.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// Check that the reflectance coefficients are usable.
func (m Material) Validate() error {
	switch {
	case m.Ambient < 0:
		return fmt.Errorf("%w: negative ambient coefficient %g", ErrInvalidMaterial, m.Ambient)
	case m.Diffuse < 0:
		return fmt.Errorf("%w: negative diffuse coefficient %g", ErrInvalidMaterial, m.Diffuse)
	case m.Specular < 0:
		return fmt.Errorf("%w: negative specular coefficient %g", ErrInvalidMaterial, m.Specular)
	case m.Shininess <= 0:
		return fmt.Errorf("%w: shininess must be positive; got %g", ErrInvalidMaterial, m.Shininess)
	}
	return nil
}

// Evaluate the Phong reflection model for a single light. Points in shadow
// only receive the ambient term.
func (m Material) Lighting(light PointLight, point types.Point, eyeV, normalV types.Vector, inShadow bool) types.Color {
	effectiveColor := m.Color.Blend(light.Intensity)
	ambient := effectiveColor.Mul(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := light.Position.Sub(point).Normalize()
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Mul(m.Diffuse * lightDotNormal)

	specular := types.Black
	reflectV := lightV.Neg().Reflect(normalV)
	if reflectDotEye := reflectV.Dot(eyeV); reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Mul(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
