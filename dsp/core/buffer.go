package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T Number](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to 0.
func Zero[T Number](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto[T Number](dst, src []T) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}

// ToFloat64 widens src into dst and returns the number of converted elements.
func ToFloat64[T Number](dst []float64, src []T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}

// FromFloat64 narrows src into dst using Go conversion rules (truncation
// toward zero for integer element types) and returns the count.
func FromFloat64[T Number](dst []T, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = T(src[i])
	}
	return n
}
