package canvas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// Save canvas as a PNG image.
func (c *Canvas) SavePNG(filename string) error {
	return gg.SavePNG(filename, c.ToImage())
}

// Save canvas as a plain PPM image.
func (c *Canvas) SavePPM(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	err = c.WritePPM(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Save canvas using an encoder selected by the file extension.
func Save(c *Canvas, filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return c.SavePNG(filename)
	case ".ppm":
		return c.SavePPM(filename)
	default:
		return fmt.Errorf("canvas: unsupported image format %q", ext)
	}
}
