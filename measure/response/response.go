package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	timestats "github.com/cwbudde/algo-kickfilters/stats/time"
)

// Errors returned by the analyzer.
var (
	ErrInvalidSampleRate = errors.New("response: sample rate must be positive")
	ErrInvalidLength     = errors.New("response: length must be positive")
	ErrEmptyIR           = errors.New("response: impulse response is empty")
	ErrSettle            = errors.New("response: settle must be in [0, n)")
	ErrSilentInput       = errors.New("response: test frequency produces a silent sine")
)

// DefaultSettleTol is the relative impulse-response level GainAt treats as
// settled when it picks the transient length itself.
const DefaultSettleTol = 1e-6

// BlockFunc filters src into dst. Both slices have the same length.
type BlockFunc func(dst, src []float64)

// Curve is a sampled magnitude response from DC to Nyquist.
type Curve struct {
	Freqs []float64 // bin centre frequencies in Hz
	Mags  []float64 // linear magnitudes
}

// Analyzer characterises filters running at a fixed sample rate.
type Analyzer struct {
	SampleRate float64
}

// NewAnalyzer creates an analyzer for the given sample rate in Hz.
func NewAnalyzer(sampleRate float64) *Analyzer {
	return &Analyzer{SampleRate: sampleRate}
}

// ImpulseResponse feeds a unit impulse of length n through fn.
func (a *Analyzer) ImpulseResponse(fn BlockFunc, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	src := make([]float64, n)
	src[0] = 1
	dst := make([]float64, n)
	fn(dst, src)
	return dst, nil
}

// Magnitude returns |H| for bins 0..fftSize/2 of the zero-padded impulse
// response, where fftSize is the next power of two >= len(ir).
func (a *Analyzer) Magnitude(ir []float64) (Curve, error) {
	if a.SampleRate <= 0 {
		return Curve{}, ErrInvalidSampleRate
	}
	if len(ir) == 0 {
		return Curve{}, ErrEmptyIR
	}

	fftSize := nextPowerOf2(len(ir))
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Curve{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, fftSize)
	for i, v := range ir {
		buf[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, buf); err != nil {
		return Curve{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(freq[k])
		im[k] = imag(freq[k])
	}

	c := Curve{
		Freqs: make([]float64, bins),
		Mags:  make([]float64, bins),
	}
	vecmath.Magnitude(c.Mags, re, im)

	binHz := a.SampleRate / float64(fftSize)
	for k := range c.Freqs {
		c.Freqs[k] = float64(k) * binHz
	}
	return c, nil
}

// Response is ImpulseResponse followed by Magnitude.
func (a *Analyzer) Response(fn BlockFunc, n int) (Curve, error) {
	ir, err := a.ImpulseResponse(fn, n)
	if err != nil {
		return Curve{}, err
	}
	return a.Magnitude(ir)
}

// SettleLen returns the index after which the n-sample impulse response of
// fn stays within tol times its peak.
func (a *Analyzer) SettleLen(fn BlockFunc, n int, tol float64) (int, error) {
	ir, err := a.ImpulseResponse(fn, n)
	if err != nil {
		return 0, err
	}
	peak := timestats.Summarize(ir).Peak
	idx := timestats.SettlingIndex(ir, 0, tol*peak)
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: impulse response does not settle within %d samples", ErrSettle, n)
	}
	return idx, nil
}

// GainAt drives fn with an n-sample unit sine at freqHz and returns the RMS
// ratio out/in over samples [settle, n), skipping the start-up transient.
// A negative settle picks the transient length with [Analyzer.SettleLen]
// at tolerance [DefaultSettleTol].
func (a *Analyzer) GainAt(fn BlockFunc, freqHz float64, n, settle int) (float64, error) {
	if a.SampleRate <= 0 {
		return 0, ErrInvalidSampleRate
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	if settle < 0 {
		var err error
		if settle, err = a.SettleLen(fn, n, DefaultSettleTol); err != nil {
			return 0, err
		}
	}
	if settle >= n {
		return 0, fmt.Errorf("%w: settle=%d n=%d", ErrSettle, settle, n)
	}

	src := make([]float64, n)
	step := 2 * math.Pi * freqHz / a.SampleRate
	for i := range src {
		src[i] = math.Sin(step * float64(i))
	}
	dst := make([]float64, n)
	fn(dst, src)

	in := timestats.RMS(src[settle:])
	if in == 0 {
		return 0, fmt.Errorf("%w: %g Hz", ErrSilentInput, freqHz)
	}
	return timestats.RMS(dst[settle:]) / in, nil
}

// At returns the magnitude at freqHz by linear interpolation between bins.
// Frequencies outside the curve clamp to the end bins.
func (c Curve) At(freqHz float64) float64 {
	n := len(c.Freqs)
	if n == 0 {
		return 0
	}
	if freqHz <= c.Freqs[0] {
		return c.Mags[0]
	}
	if freqHz >= c.Freqs[n-1] {
		return c.Mags[n-1]
	}

	binHz := c.Freqs[1] - c.Freqs[0]
	pos := freqHz / binHz
	k := int(pos)
	frac := pos - float64(k)
	return c.Mags[k]*(1-frac) + c.Mags[k+1]*frac
}

// Min returns the smallest magnitude and its frequency.
func (c Curve) Min() (freqHz, mag float64) {
	if len(c.Mags) == 0 {
		return 0, 0
	}
	idx := 0
	for k, m := range c.Mags {
		if m < c.Mags[idx] {
			idx = k
		}
	}
	return c.Freqs[idx], c.Mags[idx]
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
