package hexmap

import "errors"

var (
	ErrInvalidOrientation = errors.New("hexmap: unsupported orientation")
	ErrInvalidRadius      = errors.New("hexmap: radius must be positive")
	ErrOutOfRange         = errors.New("hexmap: coordinate outside the honeycomb")
)
