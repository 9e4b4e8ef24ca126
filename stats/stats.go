// Package stats summarises the time-domain level of an analysis window.
package stats

import (
	"math"

	"github.com/cwbudde/algo-bandmeter/dsp/core"
)

// Level holds broadband statistics of one window.
type Level struct {
	Length  int
	DC      float64 // mean
	RMS     float64
	RMSDB   float64
	Peak    float64 // max |x|
	PeakDB  float64
	CrestDB float64 // peak / RMS in dB, 0 for silence
}

// Measure computes the window level in a single pass.
func Measure(signal []float64) Level {
	n := len(signal)
	if n == 0 {
		return Level{RMSDB: math.Inf(-1), PeakDB: math.Inf(-1)}
	}

	var sum, c, sumSq, peak float64
	for _, x := range signal {
		// Kahan summation for the mean.
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		sumSq += x * x
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	rms := math.Sqrt(sumSq / float64(n))

	l := Level{
		Length: n,
		DC:     sum / float64(n),
		RMS:    rms,
		RMSDB:  core.LinearToDB(rms),
		Peak:   peak,
		PeakDB: core.LinearToDB(peak),
	}
	if rms > 0 {
		l.CrestDB = core.LinearToDB(peak / rms)
	}

	return l
}
