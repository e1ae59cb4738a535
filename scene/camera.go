package scene

import (
	"fmt"
	"math"

	"github.com/achilleasa/sunhouse/canvas"
	"github.com/achilleasa/sunhouse/types"
)

// The Camera maps canvas pixels to world-space rays. The canvas is placed
// one unit in front of the camera, which looks towards -z in camera space.
type Camera struct {
	hsize int
	vsize int
	fov   float64

	// World to camera transform and its cached inverse.
	transform    types.Mat4
	invTransform types.Mat4

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// Create a camera for an hsize x vsize canvas with the given horizontal or
// vertical (whichever is larger) field of view in radians. Non-positive
// dimensions panic with ErrInvalidCameraSize.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		fov:          fov,
		transform:    types.Ident4(),
		invTransform: types.Ident4(),
	}
	if err := c.Resize(hsize, vsize); err != nil {
		panic(err)
	}
	return c
}

func (c *Camera) HSize() int            { return c.hsize }
func (c *Camera) VSize() int            { return c.vsize }
func (c *Camera) FieldOfView() float64  { return c.fov }
func (c *Camera) PixelSize() float64    { return c.pixelSize }
func (c *Camera) HalfWidth() float64    { return c.halfWidth }
func (c *Camera) HalfHeight() float64   { return c.halfHeight }
func (c *Camera) Transform() types.Mat4 { return c.transform }

// Set the view transformation. Returns types.ErrSingularMatrix if the
// matrix cannot be inverted; in that case the camera is not modified.
func (c *Camera) SetTransform(m types.Mat4) error {
	inv, err := m.Inv()
	if err != nil {
		return err
	}
	c.transform = m
	c.invTransform = inv
	return nil
}

// Orient the camera so it looks from a point towards another.
func (c *Camera) LookAt(from, to types.Point, up types.Vector) error {
	return c.SetTransform(types.ViewTransform(from, to, up))
}

// Change the canvas dimensions and recalculate the pixel size. The camera
// is left untouched if either dimension is not positive.
func (c *Camera) Resize(hsize, vsize int) error {
	if hsize <= 0 || vsize <= 0 {
		return fmt.Errorf("%w; got %dx%d", ErrInvalidCameraSize, hsize, vsize)
	}

	c.hsize = hsize
	c.vsize = vsize

	halfView := math.Tan(c.fov / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)
	return nil
}

// Get the world-space ray that passes through the center of pixel (px, py).
func (c *Camera) RayForPixel(px, py int) types.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// +x points left since the camera looks towards -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.invTransform.MulPoint(types.Pt(worldX, worldY, -1))
	origin := c.invTransform.MulPoint(types.Pt(0, 0, 0))

	return types.NewRay(origin, pixel.Sub(origin).Normalize())
}

// Render the world into a new canvas.
func (c *Camera) Render(w *World) *canvas.Canvas {
	img := canvas.New(c.hsize, c.vsize)
	c.RenderRows(w, img, 0, c.vsize)
	return img
}

// Render the rows in the [y0, y1) range into img in row-major order. The
// canvas must match the camera dimensions.
func (c *Camera) RenderRows(w *World, img *canvas.Canvas, y0, y1 int) {
	if img.Width() != c.hsize || img.Height() != c.vsize {
		panic(fmt.Errorf("scene: canvas dimensions %dx%d do not match camera dimensions %dx%d", img.Width(), img.Height(), c.hsize, c.vsize))
	}

	if y0 < 0 {
		y0 = 0
	}
	if y1 > c.vsize {
		y1 = c.vsize
	}
	for y := y0; y < y1; y++ {
		for x := 0; x < c.hsize; x++ {
			img.SetPixel(x, y, w.ColorAt(c.RayForPixel(x, y)))
		}
	}
}

func (c *Camera) String() string {
	return fmt.Sprintf("camera(%dx%d, fov: %.2f deg)", c.hsize, c.vsize, c.fov*180/math.Pi)
}
