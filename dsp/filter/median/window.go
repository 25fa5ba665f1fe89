package median

import "github.com/cwbudde/algo-kickfilters/dsp/core"

// Window is a running median over the most recent samples.
//
// Until the ring has filled, Median covers only the samples seen so far.
type Window[T core.Number] struct {
	records []T
	scratch []T
	sel     Selector[T]
	count   int
}

// NewWindow returns a Window over size samples using sel, or
// [SortSelector] when sel is nil. size below 1 is treated as 1.
func NewWindow[T core.Number](size int, sel Selector[T]) *Window[T] {
	size = max(size, 1)
	if sel == nil {
		sel = SortSelector[T]{}
	}
	return &Window[T]{
		records: make([]T, size),
		scratch: make([]T, size),
		sel:     sel,
	}
}

// Add records a sample, replacing the oldest once the ring is full.
func (w *Window[T]) Add(x T) {
	w.records[w.count%len(w.records)] = x
	w.count++
}

// Len returns the number of samples currently covered.
func (w *Window[T]) Len() int {
	return min(w.count, len(w.records))
}

// Median returns the median of the covered samples, or 0 when empty.
func (w *Window[T]) Median() T {
	n := w.Len()
	if n == 0 {
		return 0
	}
	return w.sel.Median(n, w.records, w.scratch)
}

// Reset forgets all samples.
func (w *Window[T]) Reset() {
	w.count = 0
}
