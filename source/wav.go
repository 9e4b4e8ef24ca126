package source

import (
	"context"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV plays a decoded PCM WAV file in real time.
type WAV struct {
	// Loop restarts playback at the end of the file.
	Loop bool
	// BlockSize is the number of frames per pushed block.
	BlockSize int

	sampleRate float64
	channels   int
	samples    []float32 // interleaved, normalised to [-1, 1]
}

// OpenWAV decodes the whole file at path into memory.
func OpenWAV(path string) (*WAV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidWAV, path, err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 || dec.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %s: %d channels at %d Hz", ErrInvalidWAV, path, channels, dec.SampleRate)
	}

	return &WAV{
		BlockSize:  DefaultBlockSize,
		sampleRate: float64(dec.SampleRate),
		channels:   channels,
		samples:    normalize(buf, int(dec.BitDepth)),
	}, nil
}

// normalize converts integer PCM to float32 in [-1, 1]. 8-bit WAV data is
// unsigned with a 128 midpoint.
func normalize(buf *audio.IntBuffer, bitDepth int) []float32 {
	if bitDepth <= 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}

	offset := 0
	if bitDepth == 8 {
		offset = 128
	}

	scale := 1 / float32(int64(1)<<(bitDepth-1))

	out := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		s := float32(v-offset) * scale
		switch {
		case s > 1:
			s = 1
		case s < -1:
			s = -1
		}
		out[i] = s
	}

	return out
}

// SampleRate returns the file's sample rate in Hz.
func (w *WAV) SampleRate() float64 { return w.sampleRate }

// Channels returns the file's channel count.
func (w *WAV) Channels() int { return w.channels }

// Frames returns the number of sample frames in the file.
func (w *WAV) Frames() int { return len(w.samples) / w.channels }

// Run streams the file in blocks of BlockSize frames at real-time cadence.
// It returns nil at the end of the file unless Loop is set, and ctx.Err()
// on cancellation.
func (w *WAV) Run(ctx context.Context, p Pusher) error {
	if p == nil {
		return ErrNilPusher
	}

	frames := w.BlockSize
	if frames <= 0 {
		frames = DefaultBlockSize
	}

	step := frames * w.channels
	pos := 0

	next := func() ([]float32, bool) {
		if pos >= len(w.samples) {
			if !w.Loop || len(w.samples) == 0 {
				return nil, false
			}
			pos = 0
		}

		end := min(pos+step, len(w.samples))
		block := w.samples[pos:end]
		pos = end

		return block, true
	}

	return stream(ctx, blockPeriod(frames, w.sampleRate), w.channels, p, next)
}
