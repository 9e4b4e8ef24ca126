package capture

import (
	"fmt"

	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/dsp/core"
)

// DefaultWindowLength is the analysis window length in samples.
const DefaultWindowLength = 1024

// AssembleWindow concatenates blocks in arrival order and right-aligns the
// result in a window of exactly targetLength samples: when there is more
// audio than fits, only the most recent targetLength samples are kept; when
// there is less, the front is zero-padded so the newest sample is always
// last. No blocks at all yields a silent window.
//
// dst is reused when it has enough capacity. targetLength <= 0 returns an
// empty window.
func AssembleWindow(blocks [][]float32, targetLength int, dst []float64) []float64 {
	if targetLength <= 0 {
		return dst[:0]
	}

	dst = core.EnsureLen(dst, targetLength)

	// Fill from the newest block backwards until the window is full.
	pos := targetLength
	for i := len(blocks) - 1; i >= 0 && pos > 0; i-- {
		b := blocks[i]
		if len(b) > pos {
			b = b[len(b)-pos:]
		}
		pos -= len(b)
		for j, v := range b {
			dst[pos+j] = float64(v)
		}
	}

	core.Zero(dst[:pos])

	return dst
}

// BuildWindow drains q and returns a fresh window of exactly targetLength
// samples built by [AssembleWindow].
func BuildWindow(q *Queue, targetLength int) []float64 {
	blocks := q.DrainAll()
	w := AssembleWindow(blocks, targetLength, nil)
	q.Recycle(blocks)
	return w
}

// Accumulator is the reusable form of [BuildWindow] for a single consumer:
// it keeps one window buffer across ticks and reports empty drains.
type Accumulator struct {
	queue  *Queue
	length int
	buf    []float64
	sink   diag.Sink
}

// NewAccumulator returns an Accumulator producing windows of targetLength samples.
func NewAccumulator(q *Queue, targetLength int, opts ...Option) (*Accumulator, error) {
	if q == nil {
		return nil, fmt.Errorf("capture: accumulator requires a queue")
	}
	if targetLength <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, targetLength)
	}

	o := applyOptions(opts)

	return &Accumulator{
		queue:  q,
		length: targetLength,
		buf:    make([]float64, targetLength),
		sink:   o.sink,
	}, nil
}

// Build drains the queue and returns the current analysis window along with
// the number of blocks it was built from. The window is overwritten by the
// next call to Build.
func (a *Accumulator) Build() ([]float64, int) {
	blocks := a.queue.DrainAll()
	if len(blocks) == 0 {
		a.sink.EmptyDrain()
	}

	a.buf = AssembleWindow(blocks, a.length, a.buf)
	a.queue.Recycle(blocks)

	return a.buf, len(blocks)
}

// Len returns the window length in samples.
func (a *Accumulator) Len() int {
	return a.length
}
