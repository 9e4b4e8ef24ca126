package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-bandmeter/dsp/spectrum"
)

func ExampleOneSidedAmplitude() {
	// 4-point DFT of a unit cosine at bin 1: X = [0, 2, 0, 2].
	full := []complex128{0, 2, 0, 2}
	fmt.Println(spectrum.OneSidedAmplitude(nil, full, 4))
	// Output:
	// [0 1 0]
}

func ExampleBinFrequencies() {
	fmt.Println(spectrum.BinFrequencies(8, 8000))
	// Output:
	// [0 1000 2000 3000 4000]
}
