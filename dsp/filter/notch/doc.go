// Package notch provides a second-order IIR band-stop (notch) filter for
// removing a single interfering tone, typically 50/60 Hz mains hum on
// biosignals.
//
// The design places a zero pair on the unit circle at the notch frequency
// and a pole pair at radius r behind it (Wang and Xiao, 2013). r controls
// the notch width: closer to 1 is narrower, and r >= 1 is unstable. The
// numerator is not normalized, so gain away from the notch is close to but
// not exactly one.
//
// [Filter] and [FilterWithRadius] are stateless block functions: every call
// starts from zero history, so the first two outputs carry a start-up
// transient. [New] returns a streaming [biquad.Section] for continuous use.
package notch
