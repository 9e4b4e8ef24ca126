package analysis

import "errors"

var (
	// ErrNoBands is returned when a band list is empty.
	ErrNoBands = errors.New("analysis: at least one band is required")
	// ErrInvalidBand is returned for a band with non-finite, negative or
	// empty frequency range.
	ErrInvalidBand = errors.New("analysis: invalid band")
	// ErrBandOrder is returned when bands overlap or are not ascending.
	ErrBandOrder = errors.New("analysis: bands must be ascending and non-overlapping")
	// ErrInvalidSampleRate is returned for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("analysis: sample rate must be > 0")
	// ErrInvalidLength is returned for a non-positive window length.
	ErrInvalidLength = errors.New("analysis: window length must be > 0")
	// ErrInvalidFloor is returned for a floor level that is not below 0 dB.
	ErrInvalidFloor = errors.New("analysis: floor level must be finite and < 0 dB")
	// ErrInvalidEpsilon is returned for a non-positive epsilon.
	ErrInvalidEpsilon = errors.New("analysis: epsilon must be > 0")
	// ErrInvalidGamma is returned for a non-positive gamma exponent.
	ErrInvalidGamma = errors.New("analysis: gamma must be finite and > 0")
)
