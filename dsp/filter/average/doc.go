// Package average provides a sliding-window moving average over
// caller-owned sample slices.
//
// [MovingAverage] looks forward: output i is the mean of src[i:i+order], so
// a block of n samples yields n-order outputs and the tail of dst is left
// untouched. [Stage] is the streaming form; it emits the mean of the most
// recent order samples once its window has filled.
package average
