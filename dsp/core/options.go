package core

// Timebase describes how samples are spaced in time. The IIR stages are
// parameterized by sample period (ms), the notch by sample rate (Hz).
type Timebase struct {
	SampleRate float64
}

// TimebaseOption mutates a Timebase.
type TimebaseOption func(*Timebase)

// DefaultTimebase returns a 250 Hz timebase, a common biosignal front-end rate.
func DefaultTimebase() Timebase {
	return Timebase{SampleRate: 250}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate float64) TimebaseOption {
	return func(tb *Timebase) {
		if sampleRate > 0 {
			tb.SampleRate = sampleRate
		}
	}
}

// WithSamplePeriodMs sets the sample rate from a sample period in milliseconds.
func WithSamplePeriodMs(periodMs float64) TimebaseOption {
	return func(tb *Timebase) {
		if periodMs > 0 {
			tb.SampleRate = 1000 / periodMs
		}
	}
}

// ApplyTimebaseOptions applies zero or more options to the default timebase.
func ApplyTimebaseOptions(opts ...TimebaseOption) Timebase {
	tb := DefaultTimebase()
	for _, opt := range opts {
		if opt != nil {
			opt(&tb)
		}
	}
	return tb
}

// PeriodMs returns the sample period in milliseconds.
func (tb Timebase) PeriodMs() float64 {
	return 1000 / tb.SampleRate
}

// Nyquist returns half the sample rate.
func (tb Timebase) Nyquist() float64 {
	return tb.SampleRate / 2
}
