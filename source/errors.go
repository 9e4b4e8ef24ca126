package source

import "errors"

var (
	// ErrInvalidParams is returned when a source is configured with a
	// non-positive rate, channel count or block size.
	ErrInvalidParams = errors.New("source: invalid parameters")
	// ErrInvalidWAV is returned when a file is not a readable PCM WAV file.
	ErrInvalidWAV = errors.New("source: invalid WAV file")
	// ErrNilPusher is returned when Run is called without a destination.
	ErrNilPusher = errors.New("source: pusher is required")
)
