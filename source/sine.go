package source

import (
	"context"
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandmeter/dsp/core"
)

// Sine generates a continuous sine tone on every channel.
type Sine struct {
	Freq       float64
	Amplitude  float64
	SampleRate float64
	Channels   int
	BlockSize  int

	phase float64
	buf   []float32
}

// NewSine returns a Sine with stream settings taken from opts on top of
// [core.DefaultProcessorConfig].
func NewSine(freq, amplitude float64, opts ...core.ProcessorOption) *Sine {
	cfg := core.ApplyProcessorOptions(opts...)

	return &Sine{
		Freq:       freq,
		Amplitude:  amplitude,
		SampleRate: cfg.SampleRate,
		Channels:   cfg.Channels,
		BlockSize:  cfg.BlockSize,
	}
}

func (s *Sine) validate() error {
	if !(s.SampleRate > 0) || s.Channels <= 0 || s.BlockSize < 0 || s.Freq < 0 {
		return fmt.Errorf("%w: rate=%v channels=%d block=%d freq=%v",
			ErrInvalidParams, s.SampleRate, s.Channels, s.BlockSize, s.Freq)
	}
	return nil
}

func (s *Sine) blockSize() int {
	if s.BlockSize == 0 {
		return DefaultBlockSize
	}
	return s.BlockSize
}

// Next returns the next interleaved block. The phase carries over between
// calls. The returned slice is reused by the following call.
func (s *Sine) Next() []float32 {
	frames := s.blockSize()
	n := frames * s.Channels

	s.buf = core.EnsureLen32(s.buf, n)

	step := 2 * math.Pi * s.Freq / s.SampleRate
	for i := range frames {
		v := float32(s.Amplitude * math.Sin(s.phase))
		for c := range s.Channels {
			s.buf[i*s.Channels+c] = v
		}

		s.phase += step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}

	return s.buf
}

// Run pushes one block per block period until ctx is cancelled, then
// returns ctx.Err().
func (s *Sine) Run(ctx context.Context, p Pusher) error {
	if err := s.validate(); err != nil {
		return err
	}
	if p == nil {
		return ErrNilPusher
	}

	period := blockPeriod(s.blockSize(), s.SampleRate)

	return stream(ctx, period, s.Channels, p, func() ([]float32, bool) {
		return s.Next(), true
	})
}
