package median

import "github.com/cwbudde/algo-kickfilters/dsp/core"

// Count returns the number of medians [Filter] produces for the given
// sizes. window below 1 counts as 1.
func Count(samples, order, window int) int {
	if order < 1 || order > samples {
		return 0
	}
	window = max(window, 1)
	return (samples-order)/window + 1
}

// RequiredLen returns the minimum dst length for [Filter]: the zero prefix
// plus one entry per median.
func RequiredLen(samples, order, window int) int {
	if order < 1 {
		return 0
	}
	return order + Count(samples, order, window)
}

// Filter is [FilterWith] using [SortSelector].
func Filter[T core.Number](dst, tmp, scratch, src []T, order, window int) int {
	return FilterWith[T](SortSelector[T]{}, dst, tmp, scratch, src, order, window)
}

// FilterWith writes the medians of src[i:i+order] for i = 0, window,
// 2*window, ... while the window fits, and returns how many it wrote.
//
// dst[0:order] is zero-filled first and the medians are stored from
// dst[order] onward, so dst needs [RequiredLen] entries. tmp stages each
// window and scratch is handed to sel; both need order entries. A window
// stride below 1 is treated as 1. An order below 1 writes nothing.
func FilterWith[T core.Number](sel Selector[T], dst, tmp, scratch, src []T, order, window int) int {
	if order < 1 {
		return 0
	}
	core.Zero(dst[:order])

	n := Count(len(src), order, window)
	if n == 0 {
		return 0
	}
	window = max(window, 1)
	out := dst[order : order+n]
	win := tmp[:order]

	for k := range out {
		i := k * window
		copy(win, src[i:i+order])
		out[k] = sel.Median(order, win, scratch)
	}
	return n
}
