package median_test

import (
	"fmt"

	"github.com/cwbudde/algo-kickfilters/dsp/filter/median"
)

func ExampleFilter() {
	src := []int16{5, 3, 8, 1, 9, 2}
	order, window := 3, 3

	dst := make([]int16, median.RequiredLen(len(src), order, window))
	tmp := make([]int16, order)
	scratch := make([]int16, order)

	n := median.Filter(dst, tmp, scratch, src, order, window)
	fmt.Println(n, dst)

	// Output:
	// 2 [0 0 0 5 2]
}

func ExampleSelectorFunc() {
	// Upper-middle convention instead of averaging the two middles.
	upper := median.SelectorFunc[float64](func(n int, values, scratch []float64) float64 {
		s := scratch[:n]
		copy(s, values[:n])
		for i := 1; i < n; i++ {
			for j := i; j > 0 && s[j] < s[j-1]; j-- {
				s[j], s[j-1] = s[j-1], s[j]
			}
		}
		return s[n/2]
	})

	src := []float64{4, 1, 3, 2}
	dst := make([]float64, median.RequiredLen(len(src), 4, 1))
	median.FilterWith[float64](upper, dst, make([]float64, 4), make([]float64, 4), src, 4, 1)
	fmt.Println(dst[4])

	// Output:
	// 3
}
