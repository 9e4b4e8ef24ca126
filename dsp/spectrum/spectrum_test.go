package spectrum

import (
	"math"
	"testing"
)

func TestMagnitudeInto(t *testing.T) {
	in := []complex128{3 + 4i, 0 + 2i, -6 + 8i}
	dst := make([]float64, len(in))

	magnitudeInto(dst, in)

	want := []float64{5, 2, 10}
	for i := range want {
		if math.Abs(dst[i]-want[i]) > 1e-12 {
			t.Fatalf("dst[%d]=%v want=%v", i, dst[i], want[i])
		}
	}
}

func TestOneSidedLen(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 0}, {-4, 0}, {1, 1}, {2, 2}, {7, 4}, {1024, 513},
	}

	for _, tt := range tests {
		if got := OneSidedLen(tt.n); got != tt.want {
			t.Fatalf("OneSidedLen(%d)=%d want=%d", tt.n, got, tt.want)
		}
	}
}

func TestBinFrequencies(t *testing.T) {
	f := BinFrequencies(1024, 48000)
	if len(f) != 513 {
		t.Fatalf("len=%d want=513", len(f))
	}

	if f[0] != 0 {
		t.Fatalf("f[0]=%v want=0", f[0])
	}

	if math.Abs(f[1]-46.875) > 1e-12 {
		t.Fatalf("f[1]=%v want=46.875", f[1])
	}

	if math.Abs(f[512]-24000) > 1e-9 {
		t.Fatalf("last bin=%v want=24000 (Nyquist)", f[512])
	}

	for i := 1; i < len(f); i++ {
		if f[i] <= f[i-1] {
			t.Fatalf("frequencies not strictly increasing at %d", i)
		}
	}

	if BinFrequencies(0, 48000) != nil {
		t.Fatal("expected nil for zero-length transform")
	}
}

func TestOneSidedAmplitudeScaling(t *testing.T) {
	// 4-point transform: DC, two interior bins mirrored, Nyquist.
	full := []complex128{8, 4, 2, 4}

	got := OneSidedAmplitude(nil, full, 4)

	want := []float64{2, 2, 0.5}
	if len(got) != len(want) {
		t.Fatalf("len=%d want=%d", len(got), len(want))
	}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("got[%d]=%v want=%v", i, got[i], want[i])
		}
	}
}

func TestOneSidedAmplitudeReusesDst(t *testing.T) {
	dst := make([]float64, 0, 8)
	full := make([]complex128, 8)
	full[0] = 8

	out := OneSidedAmplitude(dst, full, 8)
	if cap(out) != 8 || len(out) != 5 {
		t.Fatalf("len/cap=%d/%d want 5/8", len(out), cap(out))
	}

	if out[0] != 1 {
		t.Fatalf("DC=%v want=1", out[0])
	}
}

func TestOneSidedAmplitudeShortInput(t *testing.T) {
	if got := OneSidedAmplitude(nil, []complex128{1}, 8); len(got) != 0 {
		t.Fatalf("expected empty output for truncated bins, got %v", got)
	}
}

func TestScaleOneSided(t *testing.T) {
	mag := []float64{10, 10, 10}
	ScaleOneSided(mag, 5)

	want := []float64{2, 4, 2}
	for i := range want {
		if math.Abs(mag[i]-want[i]) > 1e-12 {
			t.Fatalf("mag[%d]=%v want=%v", i, mag[i], want[i])
		}
	}

	single := []float64{3}
	ScaleOneSided(single, 1)
	if single[0] != 3 {
		t.Fatalf("single bin=%v want=3", single[0])
	}
}
