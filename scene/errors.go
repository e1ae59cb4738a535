package scene

import "errors"

var (
	ErrNilObject         = errors.New("scene: object is nil")
	ErrDuplicateObject   = errors.New("scene: object already added")
	ErrInvalidMaterial   = errors.New("scene: invalid material")
	ErrInvalidCameraSize = errors.New("scene: camera dimensions must be positive")
)
