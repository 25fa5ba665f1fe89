package average_test

import (
	"fmt"

	"github.com/cwbudde/algo-kickfilters/dsp/filter/average"
)

func ExampleMovingAverage() {
	src := []float64{1, 2, 3, 4, 5}
	dst := make([]float64, len(src))

	n := average.MovingAverage(dst, src, 2)
	fmt.Println(n, dst[:n])

	// Output:
	// 3 [1.5 2.5 3.5]
}

func ExampleOrderForCutoff() {
	n := average.OrderForCutoff(10, 250)
	fmt.Printf("order=%d gain@10Hz=%.2f\n", n, average.Response(10, 250, n))

	// Output:
	// order=11 gain@10Hz=0.71
}
