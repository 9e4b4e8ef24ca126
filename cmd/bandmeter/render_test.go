package main

import (
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-bandmeter/analysis"
	"github.com/cwbudde/algo-bandmeter/meter"
	"github.com/cwbudde/algo-bandmeter/stats"
)

func TestBandLabel(t *testing.T) {
	tests := []struct {
		band analysis.Band
		want string
	}{
		{analysis.Band{Low: 20, High: 60}, "20"},
		{analysis.Band{Low: 250, High: 500}, "250"},
		{analysis.Band{Low: 2000, High: 4000}, "2k"},
		{analysis.Band{Low: 4500, High: 20000}, "4.5k"},
	}

	for _, tt := range tests {
		if got := bandLabel(tt.band); got != tt.want {
			t.Fatalf("bandLabel(%v) = %q, want %q", tt.band, got, tt.want)
		}
	}
}

func TestColumnLitSegments(t *testing.T) {
	r := newRenderer(analysis.DefaultBands(), meter.DefaultSegmentThresholds(), false)

	tests := []struct {
		percent float64
		lit     int
	}{
		{0, 0},
		{10, 2},
		{100, 6},
	}

	for _, tt := range tests {
		col := r.column(tt.percent)
		rows := strings.Split(col, "\n")
		if len(rows) != 6 {
			t.Fatalf("rows = %d, want 6", len(rows))
		}

		lit := 0
		for _, row := range rows {
			if strings.Contains(row, segmentGlyph) {
				lit++
			}
		}
		if lit != tt.lit {
			t.Fatalf("column(%v) lit = %d, want %d", tt.percent, lit, tt.lit)
		}

		// Lit segments fill from the bottom.
		if tt.lit > 0 && !strings.Contains(rows[len(rows)-1], segmentGlyph) {
			t.Fatalf("column(%v) bottom segment dark", tt.percent)
		}
	}
}

func TestRenderIncludesLabelsAndStatus(t *testing.T) {
	r := newRenderer(analysis.DefaultBands(), meter.DefaultSegmentThresholds(), true)

	f := meter.Frame{
		DB:      []float64{-80, -80, -80, -12, -80, -80},
		Percent: []float64{0, 0, 0, 70, 0, 0},
		Blocks:  3,
		Level:   stats.Level{PeakDB: -6, RMSDB: math.Inf(-1)},
	}

	out := r.Render(f)
	for _, want := range []string{"20", "500", "4k", "-12", "blocks 3", "peak -6.0 dBFS", "rms -inf"} {
		if !strings.Contains(out, want) {
			t.Fatalf("Render output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "silent") {
		t.Fatalf("non-silent frame rendered as silent:\n%s", out)
	}
}
