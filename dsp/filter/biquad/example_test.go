package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-kickfilters/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	for i := range 6 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
	// y[4] = -0.004400
	// y[5] = -0.002800
}

func ExampleProcessTo() {
	s := biquad.NewSection(biquad.Coefficients{B0: 0.5, B1: 0.5})
	src := []int16{10, 11, 11, 20}
	dst := make([]int16, len(src))

	biquad.ProcessTo(s, dst, src)
	fmt.Println(dst)
	// Output:
	// [5 10 11 15]
}
