package analysis

import (
	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/dsp/window"
)

const (
	// DefaultFloorDB is the level reported for silent or empty bands.
	DefaultFloorDB = -80.0
	// DefaultEpsilon guards the logarithm and the near-silence test.
	DefaultEpsilon = 1e-12
)

// Option configures an [Analyzer].
type Option func(*config)

type config struct {
	floorDB    float64
	epsilon    float64
	windowType window.Type
	windowName string
	sink       diag.Sink
}

func defaultConfig() config {
	return config{
		floorDB:    DefaultFloorDB,
		epsilon:    DefaultEpsilon,
		windowType: window.TypeHann,
	}
}

// WithFloorDB sets the lowest level reported for a band.
func WithFloorDB(db float64) Option {
	return func(c *config) {
		c.floorDB = db
	}
}

// WithEpsilon sets the near-silence threshold and logarithm guard.
func WithEpsilon(eps float64) Option {
	return func(c *config) {
		c.epsilon = eps
	}
}

// WithWindow selects the window function applied before the FFT.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.windowType = t
		c.windowName = ""
	}
}

// WithWindowName selects the window function by name, e.g. from a config
// file. Unknown names make [NewAnalyzer] fail.
func WithWindowName(name string) Option {
	return func(c *config) {
		c.windowName = name
	}
}

// WithSink reports silent windows to s.
func WithSink(s diag.Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}
