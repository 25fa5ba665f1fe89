package buffer

import (
	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/average"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/median"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/notch"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/rc"
)

// Workspace owns the output, intermediate and selector buffers the block
// filters need. Slices returned by its methods alias the workspace and are
// overwritten by the next call.
//
// A Workspace is not safe for concurrent use.
type Workspace[T core.Number] struct {
	out     Buffer[T]
	tmp     Buffer[T]
	scratch Buffer[T]
}

// NewWorkspace returns a Workspace reserved for blocks of up to samples
// values and windows of up to order values.
func NewWorkspace[T core.Number](samples, order int) *Workspace[T] {
	w := &Workspace[T]{}
	w.Reserve(samples, order)
	return w
}

// Reserve grows the buffers so calls with at most samples values and
// windows of at most order values do not allocate.
func (w *Workspace[T]) Reserve(samples, order int) {
	samples = max(samples, 0)
	order = max(order, 0)
	w.out.Grow(max(samples+1, order))
	w.tmp.Grow(max(samples, order))
	w.scratch.Grow(order)
}

// Lowpass runs [rc.Lowpass] over src.
func (w *Workspace[T]) Lowpass(src []T, fc, dtMs float64) []T {
	dst := w.out.Resize(len(src))
	rc.Lowpass(dst, src, fc, dtMs)
	return dst
}

// Highpass runs [rc.Highpass] over src.
func (w *Workspace[T]) Highpass(src []T, fc, dtMs float64) []T {
	dst := w.out.Resize(len(src))
	rc.Highpass(dst, src, fc, dtMs)
	return dst
}

// Bandpass runs [rc.Bandpass] over src using the workspace's intermediate
// buffer.
func (w *Workspace[T]) Bandpass(src []T, fc1, fc2, dtMs float64) []T {
	dst := w.out.Resize(len(src))
	tmp := w.tmp.Resize(len(src))
	rc.Bandpass(dst, tmp, src, fc1, fc2, dtMs)
	return dst
}

// Notch runs [notch.FilterWithRadius] over src.
func (w *Workspace[T]) Notch(src []T, fc, fs, r float64) []T {
	dst := w.out.Resize(len(src))
	notch.FilterWithRadius(dst, src, fc, fs, r)
	return dst
}

// MovingAverage runs [average.MovingAverage] over src and returns only the
// valid outputs.
func (w *Workspace[T]) MovingAverage(src []T, order int) []T {
	dst := w.out.Resize(len(src))
	n := average.MovingAverage(dst, src, order)
	return dst[:n]
}

// Median runs [median.Filter] over src and returns the compacted medians
// without the zero prefix.
func (w *Workspace[T]) Median(src []T, order, window int) []T {
	return w.MedianWith(median.SortSelector[T]{}, src, order, window)
}

// MedianWith is [Workspace.Median] with a caller-chosen selector.
func (w *Workspace[T]) MedianWith(sel median.Selector[T], src []T, order, window int) []T {
	if order < 1 {
		return w.out.Resize(0)
	}
	dst := w.out.Resize(median.RequiredLen(len(src), order, window))
	tmp := w.tmp.Resize(order)
	scratch := w.scratch.Resize(order)
	n := median.FilterWith(sel, dst, tmp, scratch, src, order, window)
	return dst[order : order+n]
}
