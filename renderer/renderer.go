package renderer

import (
	"context"

	"github.com/achilleasa/sunhouse/canvas"
)

type Renderer interface {
	// Render frame. Rendering stops with ErrInterrupted if ctx is
	// cancelled.
	Render(ctx context.Context) (*canvas.Canvas, error)

	// Get statistics for the last rendered frame.
	Stats() FrameStats
}
