package rc

import (
	"math"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// TimeConstant returns tau = R*C = 1/(2*pi*fc) for a cutoff in Hz.
func TimeConstant(fc float64) float64 {
	return 1 / (2 * math.Pi * fc)
}

// HighpassAlpha returns the smoothing coefficient tau/(tau+dt) of the
// first-order highpass. dtMs is the sample period in milliseconds.
func HighpassAlpha(fc, dtMs float64) float64 {
	tau := TimeConstant(fc)
	return tau / (tau + dtMs/1000)
}

// LowpassAlpha returns the smoothing coefficient dt/(tau+dt) of the
// first-order lowpass. dtMs is the sample period in milliseconds.
func LowpassAlpha(fc, dtMs float64) float64 {
	tau := TimeConstant(fc)
	dt := dtMs / 1000
	return dt / (tau + dt)
}

// Highpass filters src into dst:
//
//	dst[0] = src[0]
//	dst[i] = alpha * (dst[i-1] + src[i] - src[i-1])
//
// dst must hold at least len(src) samples and must not alias src. The
// recursion reads back dst[i-1] after narrowing to T.
func Highpass[T core.Number](dst, src []T, fc, dtMs float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	alpha := HighpassAlpha(fc, dtMs)

	dst[0] = src[0]
	for i := 1; i < len(src); i++ {
		dst[i] = T(alpha * (float64(dst[i-1]) + float64(src[i]) - float64(src[i-1])))
	}
}

// Lowpass filters src into dst:
//
//	dst[0] = alpha * src[0]
//	dst[i] = dst[i-1] + alpha * (src[i] - dst[i-1])
//
// dst must hold at least len(src) samples and must not alias src.
func Lowpass[T core.Number](dst, src []T, fc, dtMs float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	alpha := LowpassAlpha(fc, dtMs)

	dst[0] = T(alpha * float64(src[0]))
	for i := 1; i < len(src); i++ {
		prev := float64(dst[i-1])
		dst[i] = T(prev + alpha*(float64(src[i])-prev))
	}
}

// Bandpass runs [Lowpass] with cutoff fc2 from src into tmp, then
// [Highpass] with cutoff fc1 from tmp into dst. fc1 is the lower edge and
// fc2 the upper edge of the passband; fc1 < fc2 is not checked.
//
// tmp is the caller's intermediate buffer and must hold len(src) samples.
// None of the three slices may alias each other.
func Bandpass[T core.Number](dst, tmp, src []T, fc1, fc2, dtMs float64) {
	Lowpass(tmp, src, fc2, dtMs)
	Highpass(dst, tmp[:len(src)], fc1, dtMs)
}
