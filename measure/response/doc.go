// Package response measures the frequency behaviour of block filters
// numerically: impulse responses, FFT magnitude curves and steady-state
// sine gain.
//
// It treats a filter as a [BlockFunc] so every filter in this module, and
// any caller-provided one, can be characterised the same way. FFTs run on
// algo-fft plans and magnitudes use the SIMD kernels from algo-vecmath.
package response
