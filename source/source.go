package source

import (
	"context"
	"time"
)

// DefaultBlockSize is the number of frames pushed per block.
const DefaultBlockSize = 512

// Pusher receives interleaved blocks. [capture.Queue] implements it.
type Pusher interface {
	PushInterleaved(samples []float32, channels int)
}

// blockPeriod returns the wall-clock duration of blockSize frames.
func blockPeriod(blockSize int, sampleRate float64) time.Duration {
	return time.Duration(float64(blockSize) / sampleRate * float64(time.Second))
}

// stream pushes blocks from next once per period until next reports the end,
// or ctx is cancelled. It returns nil at the end of the stream.
func stream(ctx context.Context, period time.Duration, channels int, p Pusher, next func() ([]float32, bool)) error {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		block, ok := next()
		if !ok {
			return nil
		}

		p.PushInterleaved(block, channels)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
