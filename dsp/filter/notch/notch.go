package notch

import (
	"math"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/biquad"
)

// DefaultPoleRadius is the pole radius used by [Filter].
const DefaultPoleRadius = 0.8

// Design returns the notch section for centre frequency fc and sample rate
// fs (both Hz) with pole radius r.
//
// In the filter's own recurrence
//
//	y = x + b1*x[n-1] + x[n-2] + a1*y[n-1] + a2*y[n-2]
//
// with b1 = -2cos(w), a1 = 2r*cos(w), a2 = -r^2 and w = 2*pi*fc/fs. The
// returned coefficients use the biquad sign convention (A1 = -a1, A2 = -a2).
func Design(fc, fs, r float64) biquad.Coefficients {
	cw := math.Cos(2 * math.Pi * fc / fs)
	return biquad.Coefficients{
		B0: 1,
		B1: -2 * cw,
		B2: 1,
		A1: -2 * r * cw,
		A2: r * r,
	}
}

// Filter removes fc from src into dst using [DefaultPoleRadius].
func Filter[T core.Number](dst, src []T, fc, fs float64) {
	FilterWithRadius(dst, src, fc, fs, DefaultPoleRadius)
}

// FilterWithRadius removes fc from src into dst with pole radius r.
//
// dst must hold len(src) samples and must not alias src. Input and output
// history start at zero, so dst[0] and dst[1] are computed against
// zero-padded history. Output history is kept in float64; only the stored
// samples are narrowed to T.
func FilterWithRadius[T core.Number](dst, src []T, fc, fs, r float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	cw := math.Cos(2 * math.Pi * fc / fs)
	b1 := -2 * cw
	a1 := 2 * r * cw
	a2 := -(r * r)

	var x1, x2 float64 // previous inputs
	var y1, y2 float64 // previous outputs
	for i, v := range src {
		x := float64(v)
		y := x + b1*x1 + x2 + a1*y1 + a2*y2

		x2, x1 = x1, x
		y2, y1 = y1, y
		dst[i] = T(y)
	}
}

// New returns a streaming notch section with zero state.
func New(fc, fs, r float64) *biquad.Section {
	return biquad.NewSection(Design(fc, fs, r))
}
