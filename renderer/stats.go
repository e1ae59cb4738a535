package renderer

import "time"

type BlockStat struct {
	// The first row of the block.
	BlockY int

	// The block height and the percentage of total frame area it represents.
	BlockH       int
	FramePercent float32

	// Pixels with a component above 1 that the image encoder will clamp.
	Clipped int

	// Render time for the block.
	RenderTime time.Duration
}

type FrameStats struct {
	// Unique frame id.
	ID string

	// Frame dims.
	FrameW int
	FrameH int

	// Rendered scene size.
	Objects int
	Lights  int

	// Individual block stats.
	Blocks []BlockStat

	// Total render time for entire frame.
	RenderTime time.Duration
}
