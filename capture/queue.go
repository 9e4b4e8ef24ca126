package capture

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-bandmeter/diag"
	"github.com/cwbudde/algo-bandmeter/dsp/buffer"
)

// DefaultQueueCapacity is the number of blocks held before the oldest is dropped.
const DefaultQueueCapacity = 16

// Queue is a fixed-capacity FIFO of mono blocks shared between one audio
// callback (producer) and one analysis loop (consumer).
//
// Push never waits for the consumer: when the queue is full the oldest block
// is evicted to make room. Samples are copied into pooled storage before the
// lock is taken, so the lock only covers installing or evicting one slot, or
// handing every slot to the consumer in DrainAll.
type Queue struct {
	mu    sync.Mutex
	slots []*buffer.Buffer
	head  int
	size  int

	dropped atomic.Uint64
	pool    *buffer.Pool
	sink    diag.Sink
}

// NewQueue returns an empty queue holding at most capacity blocks.
func NewQueue(capacity int, opts ...Option) (*Queue, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	o := applyOptions(opts)

	return &Queue{
		slots: make([]*buffer.Buffer, capacity),
		pool:  buffer.NewPool(),
		sink:  o.sink,
	}, nil
}

// Push enqueues a copy of a mono block, evicting the oldest block when full.
func (q *Queue) Push(block []float32) {
	b := q.pool.Get(len(block))
	copy(b.Samples(), block)
	q.install(b)
}

// PushInterleaved mono-reduces an interleaved device block straight into
// queue storage and enqueues it, evicting the oldest block when full.
func (q *Queue) PushInterleaved(samples []float32, channels int) {
	b := q.pool.Get(FrameCount(len(samples), channels))
	ReduceInto(b.Samples(), samples, channels)
	q.install(b)
}

func (q *Queue) install(b *buffer.Buffer) {
	var evicted *buffer.Buffer

	q.mu.Lock()
	if q.size == len(q.slots) {
		evicted = q.slots[q.head]
		q.slots[q.head] = nil
		q.head = (q.head + 1) % len(q.slots)
		q.size--
	}
	q.slots[(q.head+q.size)%len(q.slots)] = b
	q.size++
	q.mu.Unlock()

	if evicted != nil {
		q.pool.Put(evicted)
		q.sink.Overflow(q.dropped.Add(1))
	}
}

// DrainAll removes and returns every queued block in arrival order, leaving
// the queue empty. It returns nil when nothing is queued.
//
// The caller owns the returned blocks; handing them to [Queue.Recycle] once
// they have been consumed lets later pushes reuse their storage.
func (q *Queue) DrainAll() [][]float32 {
	out := make([][]float32, 0, len(q.slots))

	q.mu.Lock()
	for i := range q.size {
		idx := (q.head + i) % len(q.slots)
		out = append(out, q.slots[idx].Samples())
		q.slots[idx] = nil
	}
	q.head, q.size = 0, 0
	q.mu.Unlock()

	if len(out) == 0 {
		return nil
	}
	return out
}

// Recycle returns drained blocks to the queue's storage pool. The caller must
// not use the blocks afterwards.
func (q *Queue) Recycle(blocks [][]float32) {
	for _, b := range blocks {
		if cap(b) > 0 {
			q.pool.Put(buffer.FromSlice(b))
		}
	}
}

// IsEmpty reports whether no block is queued.
func (q *Queue) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of queued blocks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Cap returns the queue capacity in blocks.
func (q *Queue) Cap() int {
	return len(q.slots)
}

// Dropped returns the number of blocks evicted by overflow since creation.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
