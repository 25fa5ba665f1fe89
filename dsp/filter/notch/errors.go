package notch

import (
	"errors"
	"fmt"
)

// Errors returned by Validate.
var (
	ErrSampleRate = errors.New("notch: sample rate must be > 0")
	ErrFrequency  = errors.New("notch: centre frequency must be in (0, fs/2)")
	ErrRadius     = errors.New("notch: pole radius must be in (0, 1)")
	ErrUnstable   = errors.New("notch: poles outside the unit circle")
)

// Validate checks notch parameters. The filter functions never call it.
func Validate(fc, fs, r float64) error {
	if !(fs > 0) {
		return fmt.Errorf("%w: %g", ErrSampleRate, fs)
	}
	if !(fc > 0 && fc < fs/2) {
		return fmt.Errorf("%w: fc=%g fs=%g", ErrFrequency, fc, fs)
	}
	if !(r > 0 && r < 1) {
		return fmt.Errorf("%w: %g", ErrRadius, r)
	}
	c := Design(fc, fs, r)
	if !c.Stable() {
		return fmt.Errorf("%w: radius %g", ErrUnstable, c.PoleRadius())
	}
	return nil
}
