package average

import (
	"errors"
	"fmt"
)

// Errors returned by Validate.
var (
	ErrOrder  = errors.New("average: order must be >= 1")
	ErrLength = errors.New("average: order exceeds sample count")
)

// Validate checks the parameters of [MovingAverage]. MovingAverage itself
// never calls it.
func Validate(samples, order int) error {
	if order < 1 {
		return fmt.Errorf("%w: %d", ErrOrder, order)
	}
	if order > samples {
		return fmt.Errorf("%w: order=%d samples=%d", ErrLength, order, samples)
	}
	return nil
}
