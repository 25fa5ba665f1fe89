package time

import (
	"math"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// Summary holds the time-domain statistics the filter analysis needs.
type Summary struct {
	Length      int
	DC          float64 // mean
	RMS         float64
	Min         float64
	Max         float64
	Peak        float64 // max(|min|, |max|)
	CrestFactor float64 // peak / RMS (linear)
}

// Summarize computes a Summary in a single pass.
func Summarize[T core.Number](signal []T) Summary {
	if len(signal) == 0 {
		return Summary{}
	}

	minV := float64(signal[0])
	maxV := minV

	var sum, c, sumSq float64
	for _, v := range signal {
		x := float64(v)
		// Kahan summation keeps the mean stable on long offset signals.
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		sumSq += x * x
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
	}

	n := float64(len(signal))
	s := Summary{
		Length: len(signal),
		DC:     sum / n,
		RMS:    math.Sqrt(sumSq / n),
		Min:    minV,
		Max:    maxV,
		Peak:   math.Max(math.Abs(minV), math.Abs(maxV)),
	}
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	return s
}

// RMS returns the root-mean-square of the signal.
func RMS[T core.Number](signal []T) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, v := range signal {
		x := float64(v)
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// SettlingIndex returns the first index from which every sample stays
// within tol of target, or -1 if the signal never settles.
func SettlingIndex[T core.Number](signal []T, target, tol float64) int {
	idx := -1
	for i, v := range signal {
		if math.Abs(float64(v)-target) <= tol {
			if idx < 0 {
				idx = i
			}
			continue
		}
		idx = -1
	}
	return idx
}
