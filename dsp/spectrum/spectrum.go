package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// OneSidedLen returns the number of non-negative frequency bins, floor(n/2)+1,
// of an n-point real-input transform.
func OneSidedLen(n int) int {
	if n <= 0 {
		return 0
	}
	return n/2 + 1
}

// BinFrequencies returns the centre frequency in Hz of each one-sided bin of an
// fftSize-point transform: k*sampleRate/fftSize for k in [0, fftSize/2].
//
// The result is strictly increasing, which callers rely on for binary search.
func BinFrequencies(fftSize int, sampleRate float64) []float64 {
	n := OneSidedLen(fftSize)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	binHz := sampleRate / float64(fftSize)
	for k := range out {
		out[k] = float64(k) * binHz
	}
	return out
}

// OneSidedAmplitude writes the single-sided amplitude spectrum of a real
// signal into dst and returns it.
//
// full holds the fftSize complex bins of a forward transform (only the first
// floor(fftSize/2)+1 are read). Magnitudes are divided by fftSize and every
// bin except DC and, if present, the last one is doubled to fold in the
// mirrored negative-frequency energy. dst is reused when large enough.
func OneSidedAmplitude(dst []float64, full []complex128, fftSize int) []float64 {
	n := OneSidedLen(fftSize)
	if n == 0 || len(full) < n {
		return dst[:0]
	}

	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float64, n)
	}

	magnitudeInto(dst, full[:n])
	ScaleOneSided(dst, fftSize)

	return dst
}

// ScaleOneSided converts raw one-sided DFT magnitudes of an fftSize-point
// transform to amplitudes in place: divide by fftSize, then double every bin
// except the first and the last.
func ScaleOneSided(mag []float64, fftSize int) {
	if fftSize <= 0 {
		return
	}

	scale := 1 / float64(fftSize)
	last := len(mag) - 1
	for k := range mag {
		mag[k] *= scale
		if k > 0 && k < last {
			mag[k] *= 2
		}
	}
}

func magnitudeInto(dst []float64, in []complex128) {
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}
