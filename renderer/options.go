package renderer

import "fmt"

// Rows rendered between cancellation checks if Options.BlockH is not set.
const DefaultBlockH = 16

type Options struct {
	// Frame dims. A zero value keeps the scene camera dimension.
	FrameW int
	FrameH int

	// Number of rows rendered per block.
	BlockH int
}

// Check options and fill in defaults.
func (o *Options) validate() error {
	if o.FrameW < 0 || o.FrameH < 0 {
		return fmt.Errorf("%w: frame dimensions must not be negative; got %dx%d", ErrInvalidOptions, o.FrameW, o.FrameH)
	}
	if o.BlockH < 0 {
		return fmt.Errorf("%w: block height must not be negative; got %d", ErrInvalidOptions, o.BlockH)
	}
	if o.BlockH == 0 {
		o.BlockH = DefaultBlockH
	}
	return nil
}
