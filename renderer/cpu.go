package renderer

import (
	"context"
	"time"

	"github.com/achilleasa/sunhouse/canvas"
	"github.com/achilleasa/sunhouse/log"
	"github.com/achilleasa/sunhouse/scene"
	"github.com/google/uuid"
)

// A renderer that traces the frame on the calling goroutine, one block of
// rows at a time.
type cpuRenderer struct {
	logger log.Logger

	scene   *scene.Scene
	options Options
	stats   FrameStats
}

// Create a new renderer for the given scene. Non-zero frame dimensions in
// opts resize the scene camera.
func NewDefault(sc *scene.Scene, opts Options) (Renderer, error) {
	if sc == nil || sc.World == nil {
		return nil, ErrSceneNotDefined
	}
	if sc.Camera == nil {
		return nil, ErrCameraNotDefined
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	frameW, frameH := sc.Camera.HSize(), sc.Camera.VSize()
	if opts.FrameW != 0 {
		frameW = opts.FrameW
	}
	if opts.FrameH != 0 {
		frameH = opts.FrameH
	}
	if frameW != sc.Camera.HSize() || frameH != sc.Camera.VSize() {
		if err := sc.Camera.Resize(frameW, frameH); err != nil {
			return nil, err
		}
	}
	opts.FrameW, opts.FrameH = frameW, frameH

	return &cpuRenderer{
		logger:  log.New("renderer"),
		scene:   sc,
		options: opts,
	}, nil
}

// Render frame.
func (r *cpuRenderer) Render(ctx context.Context) (*canvas.Canvas, error) {
	r.stats = FrameStats{
		ID:      uuid.New().String(),
		FrameW:  r.options.FrameW,
		FrameH:  r.options.FrameH,
		Objects: len(r.scene.World.Objects),
		Lights:  len(r.scene.World.Lights),
		Blocks:  make([]BlockStat, 0),
	}

	r.logger.Debugf("rendering frame %s (%dx%d, block height %d)", r.stats.ID, r.options.FrameW, r.options.FrameH, r.options.BlockH)
	img := canvas.New(r.options.FrameW, r.options.FrameH)

	var clipped int
	start := time.Now()
	for blockY := 0; blockY < r.options.FrameH; blockY += r.options.BlockH {
		if err := ctx.Err(); err != nil {
			r.logger.Warningf("frame %s interrupted at row %d: %s", r.stats.ID, blockY, err)
			return nil, ErrInterrupted
		}

		blockH := r.options.BlockH
		if blockY+blockH > r.options.FrameH {
			blockH = r.options.FrameH - blockY
		}

		blockStart := time.Now()
		r.scene.Camera.RenderRows(r.scene.World, img, blockY, blockY+blockH)
		stat := BlockStat{
			BlockY:       blockY,
			BlockH:       blockH,
			FramePercent: 100.0 * float32(blockH) / float32(r.options.FrameH),
			RenderTime:   time.Since(blockStart),
			Clipped:      countClipped(img, blockY, blockY+blockH),
		}
		r.stats.Blocks = append(r.stats.Blocks, stat)
		r.logger.Debugf("rendered rows [%d, %d) in %s", blockY, blockY+blockH, stat.RenderTime)
		clipped += stat.Clipped
	}
	r.stats.RenderTime = time.Since(start)

	if clipped > 0 {
		r.logger.Infof("%d pixels exceed the displayable range and will be clamped", clipped)
	}

	r.logger.Noticef("rendered %dx%d frame in %d ms", r.options.FrameW, r.options.FrameH, r.stats.RenderTime.Nanoseconds()/1e6)
	return img, nil
}

// Get render statistics.
func (r *cpuRenderer) Stats() FrameStats {
	return r.stats
}

func countClipped(img *canvas.Canvas, y0, y1 int) int {
	var count int
	for y := y0; y < y1; y++ {
		for x := 0; x < img.Width(); x++ {
			if img.At(x, y).MaxComponent() > 1 {
				count++
			}
		}
	}
	return count
}
