package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-bandmeter/dsp/buffer"
)

func ExamplePool() {
	p := buffer.NewPool()

	b := p.Get(4)
	copy(b.Samples(), []float32{1, 2, 3, 4})
	fmt.Println(b.Samples(), b.Len())

	p.Put(b)

	// Output:
	// [1 2 3 4] 4
}
