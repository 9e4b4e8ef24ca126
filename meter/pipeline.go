package meter

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cwbudde/algo-bandmeter/analysis"
	"github.com/cwbudde/algo-bandmeter/capture"
	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/stats"
)

// DefaultInterval is the display refresh period.
const DefaultInterval = 100 * time.Millisecond

// Frame is the result of one tick.
type Frame struct {
	// DB holds one level per band in dBFS, clamped to the analyzer floor.
	DB []float64
	// Percent holds the display level per band in [0, 100].
	Percent []float64
	// Blocks is the number of capture blocks drained for this frame.
	Blocks int
	// Silent is set when every band sits at the floor.
	Silent bool
	// Level is the broadband level of the analysis window.
	Level stats.Level
}

// Option configures a [Pipeline].
type Option func(*config)

type config struct {
	sink diag.Sink
}

// WithSink reports empty drains to s.
func WithSink(s diag.Sink) Option {
	return func(c *config) {
		c.sink = s
	}
}

// Pipeline connects a capture queue to an analyzer and a display mapper.
// Tick and Run belong to a single consumer goroutine; Stop and Running may
// be called from anywhere.
type Pipeline struct {
	acc      *capture.Accumulator
	analyzer *analysis.Analyzer
	mapper   analysis.Mapper
	running  atomic.Bool
}

// NewPipeline returns a Pipeline producing windows of targetLength samples.
func NewPipeline(q *capture.Queue, a *analysis.Analyzer, m analysis.Mapper, targetLength int, opts ...Option) (*Pipeline, error) {
	if q == nil {
		return nil, ErrNilQueue
	}
	if a == nil {
		return nil, ErrNilAnalyzer
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	acc, err := capture.NewAccumulator(q, targetLength, capture.WithSink(cfg.sink))
	if err != nil {
		return nil, fmt.Errorf("meter: %w", err)
	}

	return &Pipeline{acc: acc, analyzer: a, mapper: m}, nil
}

// Tick runs one drain, window, analyze and map cycle. It never blocks on
// the producer beyond a single drain.
func (p *Pipeline) Tick() Frame {
	window, blocks := p.acc.Build()
	db := p.analyzer.BandLevelsDB(window)

	floor := p.analyzer.FloorDB()
	silent := true
	for _, v := range db {
		if v > floor {
			silent = false
			break
		}
	}

	return Frame{
		DB:      db,
		Percent: p.mapper.PercentAll(nil, db),
		Blocks:  blocks,
		Silent:  silent,
		Level:   stats.Measure(window),
	}
}

// Run calls Tick every interval and hands each frame to render until ctx is
// cancelled or Stop is called. An interval <= 0 selects [DefaultInterval].
// It returns ctx.Err() on cancellation and nil after Stop.
func (p *Pipeline) Run(ctx context.Context, interval time.Duration, render func(Frame)) error {
	if !p.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer p.running.Store(false)

	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		if !p.running.Load() {
			return nil
		}

		frame := p.Tick()
		if render != nil {
			render(frame)
		}
	}
}

// Stop asks a running loop to exit before its next tick.
func (p *Pipeline) Stop() {
	p.running.Store(false)
}

// Running reports whether Run is active.
func (p *Pipeline) Running() bool {
	return p.running.Load()
}

// WindowLength returns the analysis window length in samples.
func (p *Pipeline) WindowLength() int {
	return p.acc.Len()
}
