package main

import (
	"github.com/cwbudde/algo-kickfilters/dsp/filter/average"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/median"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/notch"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/rc"
)

// blockFunc filters one block and returns the number of outputs in dst.
type blockFunc func(dst, src []float64) int

func newStreamer(cfg config) blockFunc {
	dt := cfg.tb.PeriodMs()
	switch cfg.filter {
	case "lowpass":
		s := rc.NewLowpassStage(cfg.fc, dt)
		return func(dst, src []float64) int { s.ProcessBlockTo(dst, src); return len(src) }
	case "highpass":
		s := rc.NewHighpassStage(cfg.fc, dt)
		return func(dst, src []float64) int { s.ProcessBlockTo(dst, src); return len(src) }
	case "bandpass":
		s := rc.NewBandpassStage(cfg.fc, cfg.fc2, dt)
		return func(dst, src []float64) int { s.ProcessBlockTo(dst, src); return len(src) }
	case "notch":
		s := notch.New(cfg.fc, cfg.tb.SampleRate, cfg.r)
		return func(dst, src []float64) int {
			n := copy(dst, src)
			s.ProcessBlock(dst[:n])
			return n
		}
	case "average":
		return average.NewStage(cfg.order).ProcessBlockTo
	case "median":
		w := median.NewWindow(cfg.order, selectorFor[float64](cfg.useStats))
		stride := max(cfg.window, 1)
		seen := 0
		return func(dst, src []float64) int {
			n := 0
			for _, x := range src {
				w.Add(x)
				seen++
				if k := seen - max(cfg.order, 1); k >= 0 && k%stride == 0 {
					dst[n] = w.Median()
					n++
				}
			}
			return n
		}
	}
	return func([]float64, []float64) int { return 0 }
}

// runStream feeds src through the streaming form of the filter in blocks
// of cfg.block samples.
func runStream(cfg config, src []float64) []float64 {
	fn := newStreamer(cfg)
	out := make([]float64, len(src))
	n := 0
	for start := 0; start < len(src); start += cfg.block {
		end := min(start+cfg.block, len(src))
		n += fn(out[n:], src[start:end])
	}
	return out[:n]
}
