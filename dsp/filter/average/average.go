package average

import (
	"math"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// MovingAverage writes dst[i] = mean(src[i:i+order]) for i in
// [0, len(src)-order) and returns the number of outputs written.
//
// The sum runs in float64 and each mean is narrowed to T. dst entries from
// the returned count onward are not modified. An order larger than the
// input (or negative) writes nothing. An order of zero is not guarded and
// yields 0/0 for every output.
func MovingAverage[T core.Number](dst, src []T, order int) int {
	if order < 0 || order > len(src) {
		return 0
	}
	n := len(src) - order
	if n == 0 {
		return 0
	}
	_ = dst[n-1] // bounds check hint

	div := float64(order)
	for i := range n {
		var sum float64
		for _, v := range src[i : i+order] {
			sum += float64(v)
		}
		dst[i] = T(sum / div)
	}
	return n
}

// OrderForCutoff returns the window length whose -3 dB point lies closest
// to fc for sample rate fs (both Hz). The result is at least 1.
func OrderForCutoff(fc, fs float64) int {
	if !(fc > 0) || !(fs > 0) {
		return 1
	}
	// fc ~= 0.442947 * fs / sqrt(N^2 - 1)
	k := 0.442947 * fs / fc
	n := int(math.Round(math.Sqrt(k*k + 1)))
	return max(n, 1)
}

// Response returns the magnitude response of an order-point moving average
// at frequency f for sample rate fs.
func Response(f, fs float64, order int) float64 {
	if order < 1 {
		return 0
	}
	w := math.Pi * f / fs
	s := math.Sin(w)
	if math.Abs(s) < 1e-12 {
		return 1
	}
	return math.Abs(math.Sin(w*float64(order)) / (float64(order) * s))
}
