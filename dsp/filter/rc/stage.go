package rc

import "github.com/cwbudde/algo-kickfilters/dsp/core"

// LowpassStage is the streaming form of [Lowpass]. A fresh or reset stage
// applies the same first-sample policy as the block function, so feeding a
// sequence in chunks gives the same result as one [Lowpass] call over the
// whole sequence (for float64 samples).
type LowpassStage struct {
	alpha  float64
	y1     float64
	primed bool
}

// NewLowpassStage returns a lowpass stage for cutoff fc (Hz) and sample
// period dtMs (ms).
func NewLowpassStage(fc, dtMs float64) *LowpassStage {
	return &LowpassStage{alpha: LowpassAlpha(fc, dtMs)}
}

// Alpha returns the smoothing coefficient.
func (s *LowpassStage) Alpha() float64 { return s.alpha }

// ProcessSample filters one sample. Outputs below 1e-30 in magnitude are
// flushed to zero so idle input does not decay into denormals.
func (s *LowpassStage) ProcessSample(x float64) float64 {
	if !s.primed {
		s.primed = true
		s.y1 = s.alpha * x
		return s.y1
	}
	s.y1 = core.FlushDenormals(s.y1 + s.alpha*(x-s.y1))
	return s.y1
}

// ProcessBlockTo filters src into dst. dst must hold len(src) samples.
func (s *LowpassStage) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset forgets the history; the next sample is treated as the first.
func (s *LowpassStage) Reset() {
	s.y1 = 0
	s.primed = false
}

// State returns the last output and whether the stage has seen a sample.
func (s *LowpassStage) State() (y1 float64, primed bool) {
	return s.y1, s.primed
}

// SetState restores a state captured with State.
func (s *LowpassStage) SetState(y1 float64, primed bool) {
	s.y1 = y1
	s.primed = primed
}

// HighpassStage is the streaming form of [Highpass].
type HighpassStage struct {
	alpha  float64
	x1, y1 float64
	primed bool
}

// NewHighpassStage returns a highpass stage for cutoff fc (Hz) and sample
// period dtMs (ms).
func NewHighpassStage(fc, dtMs float64) *HighpassStage {
	return &HighpassStage{alpha: HighpassAlpha(fc, dtMs)}
}

// Alpha returns the smoothing coefficient.
func (s *HighpassStage) Alpha() float64 { return s.alpha }

// ProcessSample filters one sample. The first sample after construction or
// Reset passes through unfiltered.
func (s *HighpassStage) ProcessSample(x float64) float64 {
	if !s.primed {
		s.primed = true
		s.x1, s.y1 = x, x
		return x
	}
	y := core.FlushDenormals(s.alpha * (s.y1 + x - s.x1))
	s.x1, s.y1 = x, y
	return y
}

// ProcessBlockTo filters src into dst. dst must hold len(src) samples.
func (s *HighpassStage) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// Reset forgets the history.
func (s *HighpassStage) Reset() {
	s.x1, s.y1 = 0, 0
	s.primed = false
}

// State returns the previous input, previous output and primed flag.
func (s *HighpassStage) State() (x1, y1 float64, primed bool) {
	return s.x1, s.y1, s.primed
}

// SetState restores a state captured with State.
func (s *HighpassStage) SetState(x1, y1 float64, primed bool) {
	s.x1, s.y1 = x1, y1
	s.primed = primed
}

// BandpassStage cascades a lowpass (upper edge) into a highpass (lower edge),
// the streaming form of [Bandpass]. It needs no intermediate buffer.
type BandpassStage struct {
	Low  LowpassStage
	High HighpassStage
}

// NewBandpassStage returns a bandpass stage passing fc1..fc2 Hz.
func NewBandpassStage(fc1, fc2, dtMs float64) *BandpassStage {
	return &BandpassStage{
		Low:  LowpassStage{alpha: LowpassAlpha(fc2, dtMs)},
		High: HighpassStage{alpha: HighpassAlpha(fc1, dtMs)},
	}
}

// ProcessSample filters one sample through both stages.
func (s *BandpassStage) ProcessSample(x float64) float64 {
	return s.High.ProcessSample(s.Low.ProcessSample(x))
}

// ProcessBlockTo filters src into dst. dst must hold len(src) samples.
func (s *BandpassStage) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = s.High.ProcessSample(s.Low.ProcessSample(x))
	}
}

// Reset clears both stages.
func (s *BandpassStage) Reset() {
	s.Low.Reset()
	s.High.Reset()
}
