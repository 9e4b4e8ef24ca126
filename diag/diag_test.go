package diag

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestCounterConcurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				c.Overflow(uint64(i))
				c.EmptyDrain()
			}
		}()
	}
	wg.Wait()
	c.SilentWindow()

	got := c.Snapshot()
	want := Counts{Overflows: 800, EmptyDrains: 800, SilentWindows: 1}
	if got != want {
		t.Fatalf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestLoggerRateLimitsOverflow(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	for total := uint64(1); total <= 20; total++ {
		l.Overflow(total)
	}

	// Powers of two up to 20: 1, 2, 4, 8, 16.
	if n := strings.Count(buf.String(), "audio queue overflow"); n != 5 {
		t.Fatalf("logged %d overflow lines, want 5:\n%s", n, buf.String())
	}

	if !strings.Contains(buf.String(), "dropped_total=16") {
		t.Fatalf("missing dropped_total attribute:\n%s", buf.String())
	}
}

func TestLoggerDebugEvents(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.EmptyDrain()
	l.SilentWindow()

	out := buf.String()
	if !strings.Contains(out, "no audio queued") || !strings.Contains(out, "below silence threshold") {
		t.Fatalf("unexpected log output:\n%s", out)
	}
}

func TestMultiFansOut(t *testing.T) {
	var a, b Counter
	s := Multi(&a, nil, &b)

	s.Overflow(1)
	s.EmptyDrain()
	s.SilentWindow()

	for _, c := range []*Counter{&a, &b} {
		if got := c.Snapshot(); got != (Counts{1, 1, 1}) {
			t.Fatalf("Snapshot() = %+v, want all ones", got)
		}
	}
}

func TestOrNop(t *testing.T) {
	if _, ok := OrNop(nil).(Nop); !ok {
		t.Fatal("OrNop(nil) should return Nop")
	}

	var c Counter
	if OrNop(&c) != Sink(&c) {
		t.Fatal("OrNop should return the given sink")
	}
}
