package analysis

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/dsp/core"
	"github.com/cwbudde/algo-bandmeter/dsp/spectrum"
	"github.com/cwbudde/algo-bandmeter/dsp/window"
	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Analyzer computes per-band RMS levels in dBFS from an analysis window.
//
// Plans, window coefficients and bin ranges are prepared for the configured
// window length and rebuilt transparently if a window of another length is
// passed in. An Analyzer is meant for a single consumer goroutine and is not
// safe for concurrent use.
type Analyzer struct {
	sampleRate float64
	bands      Bands
	floorDB    float64
	epsilon    float64
	windowType window.Type
	sink       diag.Sink

	length int
	coeffs []float64
	freqs  []float64
	ranges [][2]int // per band, one-sided bin indices [lo, hi)

	plan     *algofft.Plan[complex128] // nil when the backend rejects or mis-computes length
	in       []complex128
	out      []complex128
	windowed []float64
	amp      []float64
}

// NewAnalyzer returns an Analyzer for windows of windowLength samples taken at
// sampleRate Hz. It fails on a non-positive sample rate or length, an invalid
// band list, or an invalid option value.
func NewAnalyzer(sampleRate float64, windowLength int, bands Bands, opts ...Option) (*Analyzer, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if windowLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, windowLength)
	}

	if err := bands.Validate(); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if math.IsNaN(cfg.floorDB) || math.IsInf(cfg.floorDB, 0) || cfg.floorDB >= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFloor, cfg.floorDB)
	}

	if !(cfg.epsilon > 0) || math.IsInf(cfg.epsilon, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEpsilon, cfg.epsilon)
	}

	if cfg.windowName != "" {
		t, err := window.ParseType(cfg.windowName)
		if err != nil {
			return nil, fmt.Errorf("analysis: %w", err)
		}
		cfg.windowType = t
	}

	a := &Analyzer{
		sampleRate: sampleRate,
		bands:      append(Bands(nil), bands...),
		floorDB:    cfg.floorDB,
		epsilon:    cfg.epsilon,
		windowType: cfg.windowType,
		sink:       diag.OrNop(cfg.sink),
	}
	a.prepare(windowLength)

	return a, nil
}

// prepare builds the per-length state: window coefficients, bin frequencies,
// band bin ranges and, when the FFT backend handles the length correctly, a
// plan. Otherwise the analyzer falls back to per-bin Goertzel evaluation.
func (a *Analyzer) prepare(length int) {
	a.length = length
	a.coeffs = window.Generate(a.windowType, length)
	a.freqs = spectrum.BinFrequencies(length, a.sampleRate)
	a.ranges = binRanges(a.freqs, a.bands)
	a.windowed = make([]float64, length)
	a.amp = make([]float64, len(a.freqs))

	a.plan, a.in, a.out = nil, nil, nil

	plan, err := algofft.NewPlan64(length)
	if err != nil || !planMatchesDFT(plan, length) {
		return
	}

	a.plan = plan
	a.in = make([]complex128, length)
	a.out = make([]complex128, length)
}

// planMatchesDFT checks a plan once against the direct DFT on a fixed
// broadband vector. The backend accepts some mixed-radix lengths whose bins
// come out wrong, so only power-of-two lengths are trusted unchecked.
func planMatchesDFT(plan *algofft.Plan[complex128], n int) bool {
	if n&(n-1) == 0 {
		return true
	}

	x := make([]float64, n)
	in := make([]complex128, n)
	for i := range x {
		fi := float64(i)
		x[i] = math.Sin(0.37*fi) + 0.5*math.Cos(1.91*fi) + 0.25*float64(i%5)
		in[i] = complex(x[i], 0)
	}

	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return false
	}

	want := make([]float64, spectrum.OneSidedLen(n))
	spectrum.BinMagnitudes(want, x)

	tol := 1e-9 * float64(n)
	for k, w := range want {
		if !core.NearlyEqual(cmplx.Abs(out[k]), w, tol) {
			return false
		}
	}

	return true
}

// binRanges maps each band to the half-open range of bin indices whose
// frequency f satisfies low <= f < high. freqs must be ascending.
func binRanges(freqs []float64, bands Bands) [][2]int {
	out := make([][2]int, len(bands))
	for i, b := range bands {
		out[i] = [2]int{
			sort.SearchFloat64s(freqs, b.Low),
			sort.SearchFloat64s(freqs, b.High),
		}
	}
	return out
}

// BandLevelsDB returns one level in dBFS per band, in band order.
//
// Empty or near-silent input (every |x| below epsilon) yields the floor for
// every band. Otherwise the samples are windowed, transformed, normalised to
// a one-sided amplitude spectrum, and each band's bins are reduced to
// 20*log10(rms + epsilon), clamped to the floor. A band that contains no bin
// also reports the floor. samples is not modified.
func (a *Analyzer) BandLevelsDB(samples []float64) []float64 {
	out := make([]float64, len(a.bands))

	if len(samples) == 0 || core.MaxAbs(samples) < a.epsilon {
		a.sink.SilentWindow()
		a.fillFloor(out)
		return out
	}

	if len(samples) != a.length {
		a.prepare(len(samples))
	}

	core.CopyInto(a.windowed, samples)
	vecmath.MulBlockInPlace(a.windowed, a.coeffs)

	amp := a.amplitudeSpectrum()

	for i, r := range a.ranges {
		lo, hi := r[0], r[1]
		if lo >= hi {
			out[i] = a.floorDB
			continue
		}

		sumSq := 0.0
		for _, m := range amp[lo:hi] {
			sumSq += m * m
		}

		rms := math.Sqrt(sumSq / float64(hi-lo))
		out[i] = math.Max(core.LinearToDB(rms+a.epsilon), a.floorDB)
	}

	return out
}

// amplitudeSpectrum returns the one-sided amplitude spectrum of a.windowed.
func (a *Analyzer) amplitudeSpectrum() []float64 {
	if a.plan != nil {
		for i, v := range a.windowed {
			a.in[i] = complex(v, 0)
		}

		if err := a.plan.Forward(a.out, a.in); err == nil {
			a.amp = spectrum.OneSidedAmplitude(a.amp, a.out, a.length)
			return a.amp
		}
	}

	spectrum.BinMagnitudes(a.amp, a.windowed)
	spectrum.ScaleOneSided(a.amp, a.length)

	return a.amp
}

func (a *Analyzer) fillFloor(out []float64) {
	for i := range out {
		out[i] = a.floorDB
	}
}

// Frequencies returns the one-sided bin frequencies for the current window length.
func (a *Analyzer) Frequencies() []float64 {
	return append([]float64(nil), a.freqs...)
}

// Bands returns a copy of the configured bands.
func (a *Analyzer) Bands() Bands {
	return append(Bands(nil), a.bands...)
}

// FloorDB returns the configured floor level.
func (a *Analyzer) FloorDB() float64 {
	return a.floorDB
}

// SampleRate returns the configured sample rate in Hz.
func (a *Analyzer) SampleRate() float64 {
	return a.sampleRate
}

// WindowLength returns the window length the analyzer is currently prepared for.
func (a *Analyzer) WindowLength() int {
	return a.length
}
