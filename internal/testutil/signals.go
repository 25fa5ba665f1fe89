package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC[T core.Number](value T, length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp generates start, start+step, start+2*step, ...
func Ramp[T core.Number](start, step T, length int) []T {
	out := make([]T, length)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}

// Convert narrows or widens a float64 signal into element type T.
func Convert[T core.Number](in []float64) []T {
	out := make([]T, len(in))
	core.FromFloat64(out, in)
	return out
}
