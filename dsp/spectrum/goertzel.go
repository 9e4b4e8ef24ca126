package spectrum

import "math"

// goertzel evaluates a single DFT term with a second-order recursion.
//
// Tuned to the ratio k/n, power() equals |X[k]|^2 of the n-point DFT of the
// block processed since the last tune.
type goertzel struct {
	coeff  float64
	s0, s1 float64
}

// tune targets frequency/sampleRate cycles per sample and clears the state.
func (g *goertzel) tune(frequency, sampleRate float64) {
	g.coeff = 2 * math.Cos(2*math.Pi*frequency/sampleRate)
	g.s0, g.s1 = 0, 0
}

func (g *goertzel) process(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

func (g *goertzel) power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

func (g *goertzel) magnitude() float64 {
	p := g.power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// BinMagnitudes evaluates |X[k]| of the len(input)-point DFT for k in
// [0, len(dst)) with one Goertzel pass per bin, writing into dst.
//
// It is O(N*K) and meant for transform lengths an FFT backend rejects.
func BinMagnitudes(dst, input []float64) {
	n := float64(len(input))
	if n == 0 {
		return
	}

	var g goertzel
	for k := range dst {
		// Bin k of an n-point DFT is the Goertzel target k at "sample rate" n.
		g.tune(float64(k), n)
		g.process(input)
		dst[k] = g.magnitude()
	}
}
