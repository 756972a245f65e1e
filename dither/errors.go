package dither

import "errors"

// Error kinds reported by the engine. All are detected synchronously;
// none are retried internally. Wrap detail with fmt.Errorf and %w so
// callers can test with errors.Is.
var (
	ErrInvalidConfig   = errors.New("dither: invalid configuration")
	ErrOutOfBounds     = errors.New("dither: coordinate out of bounds")
	ErrUnsupportedMode = errors.New("dither: unsupported mode")
)
