package median

import (
	"slices"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/montanaflynn/stats"
)

// Selector returns the median of values[:n]. scratch holds at least n
// elements and may be overwritten; values must not be modified.
type Selector[T core.Number] interface {
	Median(n int, values, scratch []T) T
}

// SelectorFunc adapts a function to [Selector].
type SelectorFunc[T core.Number] func(n int, values, scratch []T) T

// Median calls f.
func (f SelectorFunc[T]) Median(n int, values, scratch []T) T {
	return f(n, values, scratch)
}

// SortSelector sorts a copy in scratch and picks the middle. For even n the
// result is the mean of the two middle values, computed in float64 and
// narrowed to T.
type SortSelector[T core.Number] struct{}

// Median implements [Selector].
func (SortSelector[T]) Median(n int, values, scratch []T) T {
	if n <= 0 {
		return 0
	}
	s := scratch[:n]
	copy(s, values[:n])
	slices.Sort(s)

	if n%2 == 1 {
		return s[n/2]
	}
	return T((float64(s[n/2-1]) + float64(s[n/2])) / 2)
}

// StatsSelector computes float64 medians with montanaflynn/stats. It
// follows the same even-n convention as [SortSelector] but allocates its
// own sorted copy, leaving scratch unused.
type StatsSelector struct{}

// Median implements [Selector].
func (StatsSelector) Median(n int, values, _ []float64) float64 {
	m, err := stats.Median(values[:n])
	if err != nil {
		return 0
	}
	return m
}
