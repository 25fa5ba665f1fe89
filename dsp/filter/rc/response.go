package rc

import (
	"math"
	"math/cmplx"
)

// LowpassResponse returns the complex response of the discrete lowpass
//
//	H(z) = alpha / (1 - (1-alpha) z^-1)
//
// at freqHz for sample rate sampleRate and cutoff fc.
func LowpassResponse(freqHz, sampleRate, fc float64) complex128 {
	alpha := LowpassAlpha(fc, 1000/sampleRate)
	z1 := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))
	return complex(alpha, 0) / (1 - complex(1-alpha, 0)*z1)
}

// HighpassResponse returns the complex response of the discrete highpass
//
//	H(z) = alpha (1 - z^-1) / (1 - alpha z^-1)
func HighpassResponse(freqHz, sampleRate, fc float64) complex128 {
	alpha := HighpassAlpha(fc, 1000/sampleRate)
	z1 := cmplx.Exp(complex(0, -2*math.Pi*freqHz/sampleRate))
	return complex(alpha, 0) * (1 - z1) / (1 - complex(alpha, 0)*z1)
}

// BandpassResponse returns the product of the lowpass (fc2) and highpass
// (fc1) responses.
func BandpassResponse(freqHz, sampleRate, fc1, fc2 float64) complex128 {
	return LowpassResponse(freqHz, sampleRate, fc2) * HighpassResponse(freqHz, sampleRate, fc1)
}

// MagnitudeDB returns 20*log10|h|.
func MagnitudeDB(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
}
