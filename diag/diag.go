// Package diag defines the diagnostics sink that the capture and metering
// packages report non-fatal events to: queue overflow, empty drains and
// silent analysis windows. None of these events is an error; they exist so
// an operator can tell a stalled consumer from a quiet room.
package diag

import (
	"log/slog"
	"math/bits"
	"sync/atomic"
)

// Sink receives diagnostic events. Overflow is called from the real-time
// producer path and must not block.
type Sink interface {
	// Overflow reports that the oldest queued block was evicted. total is the
	// running number of evictions since the queue was created.
	Overflow(total uint64)
	// EmptyDrain reports an analysis tick that found no queued audio.
	EmptyDrain()
	// SilentWindow reports an analysis window below the silence epsilon.
	SilentWindow()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Overflow(uint64) {}
func (Nop) EmptyDrain()     {}
func (Nop) SilentWindow()   {}

// OrNop returns s, or a [Nop] sink when s is nil.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}

// Counts is a point-in-time copy of a [Counter].
type Counts struct {
	Overflows     uint64
	EmptyDrains   uint64
	SilentWindows uint64
}

// Counter tallies events with atomic counters. The zero value is ready to use.
type Counter struct {
	overflows     atomic.Uint64
	emptyDrains   atomic.Uint64
	silentWindows atomic.Uint64
}

func (c *Counter) Overflow(uint64) { c.overflows.Add(1) }
func (c *Counter) EmptyDrain()     { c.emptyDrains.Add(1) }
func (c *Counter) SilentWindow()   { c.silentWindows.Add(1) }

// Snapshot returns the current totals.
func (c *Counter) Snapshot() Counts {
	return Counts{
		Overflows:     c.overflows.Load(),
		EmptyDrains:   c.emptyDrains.Load(),
		SilentWindows: c.silentWindows.Load(),
	}
}

// Logger forwards events to a structured logger.
//
// Overflows are logged only when the running total reaches a power of two,
// so a consumer that falls behind produces a handful of lines instead of one
// per audio callback. Empty drains and silent windows log at debug level.
type Logger struct {
	log *slog.Logger
}

// NewLogger returns a Logger writing to l, or to slog.Default() when l is nil.
func NewLogger(l *slog.Logger) *Logger {
	if l == nil {
		l = slog.Default()
	}
	return &Logger{log: l}
}

func (l *Logger) Overflow(total uint64) {
	if bits.OnesCount64(total) != 1 {
		return
	}
	l.log.Warn("audio queue overflow, dropped oldest block", "dropped_total", total)
}

func (l *Logger) EmptyDrain() {
	l.log.Debug("no audio queued, analysing silence")
}

func (l *Logger) SilentWindow() {
	l.log.Debug("analysis window below silence threshold")
}

// Multi fans every event out to each non-nil sink in order.
func Multi(sinks ...Sink) Sink {
	out := make(multi, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multi []Sink

func (m multi) Overflow(total uint64) {
	for _, s := range m {
		s.Overflow(total)
	}
}

func (m multi) EmptyDrain() {
	for _, s := range m {
		s.EmptyDrain()
	}
}

func (m multi) SilentWindow() {
	for _, s := range m {
		s.SilentWindow()
	}
}
