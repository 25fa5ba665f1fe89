// Package biquad provides the second-order IIR section used by the notch
// filter and its analysis helpers.
//
// A [Section] runs Direct Form II Transposed over float64 samples and keeps
// its two-element delay line between calls, which makes it the streaming
// counterpart of the stateless notch block function. [ProcessTo] drives a
// section over any [core.Number] element type.
//
// [Coefficients] also answer closed-form questions: complex response,
// magnitude, phase, pole/zero locations and stability.
package biquad
