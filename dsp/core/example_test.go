package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-tonefft/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleInterval(0.05),
		core.WithSamples(256),
	)

	fmt.Printf("dt=%.2f samples=%d\n", cfg.SampleInterval, cfg.Samples)

	// Output:
	// dt=0.05 samples=256
}

func ExampleAddInto() {
	sum := make([]float64, 4)
	core.AddInto(sum, []float64{1, 2, 3, 4})
	core.AddInto(sum, []float64{1, 1, 1, 1})
	fmt.Println(sum)

	core.Zero(sum[:2])
	fmt.Println(sum)

	// Output:
	// [2 3 4 5]
	// [0 0 4 5]
}
