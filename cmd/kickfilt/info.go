package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"text/tabwriter"

	"github.com/cwbudde/algo-kickfilters/dsp/buffer"
	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/average"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/notch"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/rc"
	"github.com/cwbudde/algo-kickfilters/measure/response"
)

var sampleFreqs = []float64{0.5, 1, 5, 10, 25, 40, 50, 60, 100}

// responseLen is long enough for the slowest useful RC pole to decay.
const responseLen = 8192

func printInfo(w io.Writer, cfg config) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := designRows(cfg)
	fmt.Fprintf(tw, "Parameter\tValue\n")
	fmt.Fprintf(tw, "---------\t-----\n")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r[0], r[1])
	}

	if cfg.filter != "median" {
		an, fn := analyzer(cfg)
		if settle, err := an.SettleLen(fn, responseLen, response.DefaultSettleTol); err == nil {
			fmt.Fprintf(tw, "settling\t%d samples\n", settle)
		}
		curve, err := an.Response(fn, responseLen)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "\nFrequency [Hz]\tGain\tGain [dB]\n")
		fmt.Fprintf(tw, "--------------\t----\t---------\n")
		for _, f := range sampleFreqs {
			if f >= cfg.tb.Nyquist() {
				break
			}
			g := curve.At(f)
			fmt.Fprintf(tw, "%.1f\t%.4f\t%.2f\n", f, g, core.LinearToDB(g))
		}
	}
	return tw.Flush()
}

func designRows(cfg config) [][2]string {
	dt := cfg.tb.PeriodMs()
	rows := [][2]string{
		{"filter", cfg.filter},
		{"sample rate", fmt.Sprintf("%g Hz", cfg.tb.SampleRate)},
		{"sample period", fmt.Sprintf("%.4g ms", dt)},
	}

	switch cfg.filter {
	case "lowpass":
		rows = append(rows,
			[2]string{"fc", fmt.Sprintf("%g Hz", cfg.fc)},
			[2]string{"tau", fmt.Sprintf("%.6g s", rc.TimeConstant(cfg.fc))},
			[2]string{"alpha", fmt.Sprintf("%.6f", rc.LowpassAlpha(cfg.fc, dt))},
		)
	case "highpass":
		rows = append(rows,
			[2]string{"fc", fmt.Sprintf("%g Hz", cfg.fc)},
			[2]string{"tau", fmt.Sprintf("%.6g s", rc.TimeConstant(cfg.fc))},
			[2]string{"alpha", fmt.Sprintf("%.6f", rc.HighpassAlpha(cfg.fc, dt))},
		)
	case "bandpass":
		rows = append(rows,
			[2]string{"band", fmt.Sprintf("%g..%g Hz", cfg.fc, cfg.fc2)},
			[2]string{"lowpass alpha", fmt.Sprintf("%.6f", rc.LowpassAlpha(cfg.fc2, dt))},
			[2]string{"highpass alpha", fmt.Sprintf("%.6f", rc.HighpassAlpha(cfg.fc, dt))},
		)
	case "notch":
		c := notch.Design(cfg.fc, cfg.tb.SampleRate, cfg.r)
		rows = append(rows,
			[2]string{"fc", fmt.Sprintf("%g Hz", cfg.fc)},
			[2]string{"pole radius", fmt.Sprintf("%.4f", c.PoleRadius())},
			[2]string{"b1", fmt.Sprintf("%.6f", c.B1)},
			[2]string{"a1", fmt.Sprintf("%.6f", -c.A1)},
			[2]string{"a2", fmt.Sprintf("%.6f", -c.A2)},
			[2]string{"zeros at", fmt.Sprintf("±%.4g Hz", math.Abs(cmplx.Phase(c.Zeros()[0]))*cfg.tb.SampleRate/(2*math.Pi))},
			[2]string{"DC gain", fmt.Sprintf("%.4f", c.DCGain())},
			[2]string{"stable", fmt.Sprintf("%v", c.Stable())},
			[2]string{"gain at fc", fmt.Sprintf("%.2f dB", c.MagnitudeDB(cfg.fc, cfg.tb.SampleRate))},
		)
	case "average":
		rows = append(rows,
			[2]string{"order", fmt.Sprintf("%d", cfg.order)},
			[2]string{"-3 dB order for fc", fmt.Sprintf("%d", average.OrderForCutoff(cfg.fc, cfg.tb.SampleRate))},
		)
	case "median":
		rows = append(rows,
			[2]string{"order", fmt.Sprintf("%d", cfg.order)},
			[2]string{"stride", fmt.Sprintf("%d", max(cfg.window, 1))},
		)
	}
	return rows
}

// analyzer returns an analyzer at the configured rate and a float64 block
// function running the configured filter.
func analyzer(cfg config) (*response.Analyzer, response.BlockFunc) {
	ws := buffer.NewWorkspace[float64](responseLen, cfg.order)
	fn := func(dst, src []float64) {
		if cfg.filter == "average" {
			// The window looks ahead order-1 samples; delay the input so
			// every tap sees the impulse.
			shifted := make([]float64, len(src))
			copy(shifted[min(max(cfg.order-1, 0), len(src)):], src)
			src = shifted
		}
		copy(dst, apply(ws, cfg, src))
	}
	return response.NewAnalyzer(cfg.tb.SampleRate), fn
}

// measuredResponse drives the block filter with an impulse and returns its
// magnitude curve.
func measuredResponse(cfg config) (response.Curve, error) {
	an, fn := analyzer(cfg)
	return an.Response(fn, responseLen)
}
