package median

import (
	"errors"
	"fmt"
)

// Errors returned by Validate.
var (
	ErrOrder  = errors.New("median: order must be >= 1")
	ErrLength = errors.New("median: order exceeds sample count")
	ErrWindow = errors.New("median: window stride must be >= 1")
	ErrBuffer = errors.New("median: buffer too short")
)

// Validate checks the sizes passed to [Filter]. Filter itself never calls
// it; it tolerates window < 1 where Validate does not.
func Validate(samples, order, window, dstLen, tmpLen, scratchLen int) error {
	if order < 1 {
		return fmt.Errorf("%w: %d", ErrOrder, order)
	}
	if order > samples {
		return fmt.Errorf("%w: order=%d samples=%d", ErrLength, order, samples)
	}
	if window < 1 {
		return fmt.Errorf("%w: %d", ErrWindow, window)
	}
	if need := RequiredLen(samples, order, window); dstLen < need {
		return fmt.Errorf("%w: dst has %d, need %d", ErrBuffer, dstLen, need)
	}
	if tmpLen < order {
		return fmt.Errorf("%w: tmp has %d, need %d", ErrBuffer, tmpLen, order)
	}
	if scratchLen < order {
		return fmt.Errorf("%w: scratch has %d, need %d", ErrBuffer, scratchLen, order)
	}
	return nil
}
