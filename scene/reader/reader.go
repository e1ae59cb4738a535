package reader

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/achilleasa/sunhouse/asset"
	"github.com/achilleasa/sunhouse/scene"
)

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Read scene from a local file or http(s) URL.
func ReadScene(filename string) (*scene.Scene, error) {
	// Select reader based on file extension
	var reader Reader
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".scene":
		reader = newTextSceneReader()
	default:
		return nil, fmt.Errorf("readScene: unsupported file format %q", ext)
	}

	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	return reader.Read(res)
}
