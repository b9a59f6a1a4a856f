package tfr_test

import (
	"fmt"

	"github.com/RyanBlaney/sonido-tftb/algorithms/generators"
	"github.com/RyanBlaney/sonido-tftb/tfr"
)

func ExampleCompute() {
	x, _, err := generators.FMConst(64, 0.25, 0)
	if err != nil {
		panic(err)
	}

	w, err := tfr.Compute(x, []int{16, 32, 48}, 64)
	if err != nil {
		panic(err)
	}

	rows, cols := w.Dims()
	fmt.Println(rows, cols)
	// Output: 64 3
}

func ExampleEngine_WignerVille() {
	x, _, err := generators.FMConst(128, 0.125, 0)
	if err != nil {
		panic(err)
	}

	res, err := tfr.NewEngine(tfr.WithWorkers(2)).WignerVille(x, []int{32, 64, 96}, 128)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.InstantaneousFrequency())
	// Output: [0.125 0.125 0.125]
}
