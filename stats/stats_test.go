package stats

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-bandmeter/dsp/core"
	"github.com/cwbudde/algo-bandmeter/internal/testutil"
)

const tolerance = 1e-10

func almostEqual(a, b, tol float64) bool {
	if math.IsInf(a, -1) && math.IsInf(b, -1) {
		return true
	}
	return math.Abs(a-b) <= tol
}

func TestMeasureEmpty(t *testing.T) {
	l := Measure(nil)
	if l.Length != 0 || !math.IsInf(l.RMSDB, -1) || !math.IsInf(l.PeakDB, -1) {
		t.Fatalf("Measure(nil) = %+v, want zero length and -Inf levels", l)
	}
}

func TestMeasureSilence(t *testing.T) {
	l := Measure(make([]float64, 64))
	if l.RMS != 0 || l.Peak != 0 || l.CrestDB != 0 {
		t.Fatalf("Measure(zeros) = %+v", l)
	}
}

func TestMeasureSine(t *testing.T) {
	// 48 full cycles, so the mean is zero and RMS is A/sqrt(2).
	sig := testutil.DeterministicSine(1000, 48000, 0.5, 48*48)

	l := Measure(sig)
	if !almostEqual(l.RMS, 0.5/math.Sqrt2, 1e-9) {
		t.Fatalf("RMS = %v, want %v", l.RMS, 0.5/math.Sqrt2)
	}
	if !almostEqual(l.Peak, 0.5, 1e-9) {
		t.Fatalf("Peak = %v, want 0.5", l.Peak)
	}
	if !almostEqual(l.CrestDB, 20*math.Log10(math.Sqrt2), 1e-6) {
		t.Fatalf("CrestDB = %v, want %v", l.CrestDB, 20*math.Log10(math.Sqrt2))
	}
	if !almostEqual(l.DC, 0, 1e-9) {
		t.Fatalf("DC = %v, want 0", l.DC)
	}
}

func TestMeasureDC(t *testing.T) {
	l := Measure(testutil.DC(-0.25, 100))
	if !almostEqual(l.DC, -0.25, tolerance) || !almostEqual(l.Peak, 0.25, tolerance) {
		t.Fatalf("Measure(DC) = %+v", l)
	}
	if !almostEqual(l.PeakDB, 20*math.Log10(0.25), tolerance) {
		t.Fatalf("PeakDB = %v", l.PeakDB)
	}
}

func TestMeasurePeakMatchesMaxAbs(t *testing.T) {
	sig := testutil.DeterministicNoise(5, 0.8, 500)

	if got, want := Measure(sig).Peak, core.MaxAbs(sig); got != want {
		t.Fatalf("Peak = %v, want %v", got, want)
	}
}

func BenchmarkMeasure(b *testing.B) {
	sig := testutil.DeterministicNoise(1, 0.5, 1024)

	b.ReportAllocs()

	for b.Loop() {
		_ = Measure(sig)
	}
}
