package analysis

import (
	"fmt"
	"math"
)

// Band is a half-open frequency range [Low, High) in Hz.
type Band struct {
	Low  float64
	High float64
}

// Contains reports whether freq falls in [Low, High). A frequency exactly on
// High belongs to the next band up.
func (b Band) Contains(freq float64) bool {
	return freq >= b.Low && freq < b.High
}

func (b Band) String() string {
	return fmt.Sprintf("[%g, %g) Hz", b.Low, b.High)
}

// Bands is an ordered, non-overlapping partition of the spectrum.
type Bands []Band

// DefaultBands returns the six bands of the classic bar display, from sub-bass
// to treble.
func DefaultBands() Bands {
	return Bands{
		{Low: 20, High: 60},
		{Low: 60, High: 250},
		{Low: 250, High: 500},
		{Low: 500, High: 2000},
		{Low: 2000, High: 4000},
		{Low: 4000, High: 20000},
	}
}

// ParseBands converts (low, high) pairs to Bands and validates them.
func ParseBands(pairs [][2]float64) (Bands, error) {
	out := make(Bands, len(pairs))
	for i, p := range pairs {
		out[i] = Band{Low: p[0], High: p[1]}
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// Validate checks that the list is non-empty, every band is a finite
// non-negative range with Low < High, and bands ascend without overlapping.
// Adjacent bands may share an edge.
func (bs Bands) Validate() error {
	if len(bs) == 0 {
		return ErrNoBands
	}

	for i, b := range bs {
		if math.IsNaN(b.Low) || math.IsNaN(b.High) || math.IsInf(b.Low, 0) || math.IsInf(b.High, 0) {
			return fmt.Errorf("%w %d: non-finite edge %v", ErrInvalidBand, i, b)
		}

		if b.Low < 0 || b.Low >= b.High {
			return fmt.Errorf("%w %d: %v", ErrInvalidBand, i, b)
		}

		if i > 0 && b.Low < bs[i-1].High {
			return fmt.Errorf("%w: band %d %v starts below band %d %v", ErrBandOrder, i, b, i-1, bs[i-1])
		}
	}

	return nil
}

// Pairs returns the bands as (low, high) pairs.
func (bs Bands) Pairs() [][2]float64 {
	out := make([][2]float64, len(bs))
	for i, b := range bs {
		out[i] = [2]float64{b.Low, b.High}
	}
	return out
}
