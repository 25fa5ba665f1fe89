// Package rc provides first-order IIR lowpass and highpass filters derived
// from the analog RC network, plus their bandpass composition.
//
// The block functions ([Lowpass], [Highpass], [Bandpass]) are stateless
// between calls: every call starts from the same edge policy and keeps its
// one-sample history local. They never allocate; [Bandpass] takes its
// intermediate buffer from the caller. Cutoff frequencies are in Hz and the
// sample period in milliseconds.
//
// Parameters are trusted. A non-positive cutoff or period yields Inf/NaN
// output rather than an error; use [Validate] in debug builds to catch it.
//
// For continuous acquisition, [LowpassStage], [HighpassStage] and
// [BandpassStage] carry the history explicitly across blocks.
package rc
