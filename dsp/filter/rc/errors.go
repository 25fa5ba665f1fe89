package rc

import (
	"errors"
	"fmt"
)

// Errors returned by Validate and ValidateBand.
var (
	ErrCutoff   = errors.New("rc: cutoff frequency must be > 0")
	ErrPeriod   = errors.New("rc: sample period must be > 0")
	ErrBandEdge = errors.New("rc: highpass cutoff must be below lowpass cutoff")
)

// Validate checks the parameters of [Lowpass] and [Highpass]. The filters
// themselves never call it.
func Validate(fc, dtMs float64) error {
	if !(fc > 0) {
		return fmt.Errorf("%w: %g", ErrCutoff, fc)
	}
	if !(dtMs > 0) {
		return fmt.Errorf("%w: %g", ErrPeriod, dtMs)
	}
	return nil
}

// ValidateBand checks the parameters of [Bandpass].
func ValidateBand(fc1, fc2, dtMs float64) error {
	if err := Validate(fc1, dtMs); err != nil {
		return err
	}
	if err := Validate(fc2, dtMs); err != nil {
		return err
	}
	if fc1 >= fc2 {
		return fmt.Errorf("%w: fc1=%g fc2=%g", ErrBandEdge, fc1, fc2)
	}
	return nil
}
