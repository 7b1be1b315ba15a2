package transform_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonefft/dsp/transform"
)

func ExampleNew() {
	b, err := transform.New("direct")
	if err != nil {
		panic(err)
	}

	s, err := b.Forward([]float64{1, 0, 0, 0})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.0f %.0f %.0f %.0f\n", s.Real[0], s.Real[1], s.Real[2], s.Real[3])

	// Output:
	// 1 1 1 1
}

func ExampleNames() {
	fmt.Println(transform.Names())
	// Output:
	// [algofft auto direct godsp gonum]
}
