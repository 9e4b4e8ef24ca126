package capture

import "errors"

var (
	// ErrInvalidCapacity is returned for a queue capacity below one block.
	ErrInvalidCapacity = errors.New("capture: queue capacity must be > 0")
	// ErrInvalidLength is returned for a non-positive analysis window length.
	ErrInvalidLength = errors.New("capture: window length must be > 0")
)
