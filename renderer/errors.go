package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidOptions   = errors.New("renderer: invalid options")
	ErrInterrupted      = errors.New("renderer: interrupted while rendering")
)
