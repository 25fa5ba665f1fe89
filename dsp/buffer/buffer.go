package buffer

import "github.com/cwbudde/algo-kickfilters/dsp/core"

// Buffer wraps a sample slice with reuse-friendly semantics.
// Filters accept raw slices; use Samples() to bridge.
type Buffer[T core.Number] struct {
	samples []T
}

// New returns a zero-filled Buffer of the given length.
func New[T core.Number](length int) *Buffer[T] {
	return &Buffer[T]{samples: make([]T, max(length, 0))}
}

// FromSlice wraps an existing slice without copying.
func FromSlice[T core.Number](s []T) *Buffer[T] {
	return &Buffer[T]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[T]) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing slice.
func (b *Buffer[T]) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
func (b *Buffer[T]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]T, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing capacity when possible, and returns
// the resized slice. Elements beyond the previous length are zeroed.
func (b *Buffer[T]) Resize(n int) []T {
	n = max(n, 0)
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold data from earlier use.
	if n > oldLen {
		core.Zero(b.samples[oldLen:n])
	}
	return b.samples
}

// Zero sets all samples to 0.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}
