package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-kickfilters/dsp/buffer"
	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/average"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/median"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/notch"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/rc"
)

type filterEntry struct {
	name     string
	desc     string
	validate func(cfg config, samples int) error
}

var registry = []filterEntry{
	{"lowpass", "first-order RC lowpass at -fc", func(cfg config, _ int) error {
		return rc.Validate(cfg.fc, cfg.tb.PeriodMs())
	}},
	{"highpass", "first-order RC highpass at -fc", func(cfg config, _ int) error {
		return rc.Validate(cfg.fc, cfg.tb.PeriodMs())
	}},
	{"bandpass", "lowpass at -fc2 then highpass at -fc", func(cfg config, _ int) error {
		return rc.ValidateBand(cfg.fc, cfg.fc2, cfg.tb.PeriodMs())
	}},
	{"notch", "biquad band-stop at -fc with pole radius -r", func(cfg config, _ int) error {
		return notch.Validate(cfg.fc, cfg.tb.SampleRate, cfg.r)
	}},
	{"average", "forward moving average over -order samples", func(cfg config, samples int) error {
		return average.Validate(samples, cfg.order)
	}},
	{"median", "median of -order samples every -window samples", func(cfg config, samples int) error {
		// The workspace sizes every buffer, so only the shape is checked.
		need := median.RequiredLen(samples, cfg.order, cfg.window)
		return median.Validate(samples, cfg.order, cfg.window, need, cfg.order, cfg.order)
	}},
}

func lookup(name string) (filterEntry, bool) {
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return filterEntry{}, false
}

func printList(w io.Writer) {
	for _, e := range registry {
		fmt.Fprintf(w, "%-10s %s\n", e.name, e.desc)
	}
}

// apply runs the configured filter over src. The result aliases ws.
func apply[T core.Number](ws *buffer.Workspace[T], cfg config, src []T) []T {
	dt := cfg.tb.PeriodMs()
	switch cfg.filter {
	case "lowpass":
		return ws.Lowpass(src, cfg.fc, dt)
	case "highpass":
		return ws.Highpass(src, cfg.fc, dt)
	case "bandpass":
		return ws.Bandpass(src, cfg.fc, cfg.fc2, dt)
	case "notch":
		return ws.Notch(src, cfg.fc, cfg.tb.SampleRate, cfg.r)
	case "average":
		return ws.MovingAverage(src, cfg.order)
	case "median":
		return ws.MedianWith(selectorFor[T](cfg.useStats), src, cfg.order, cfg.window)
	}
	return nil
}

// selectorFor returns the stats-backed selector when requested and T is
// float64, and the sorting selector otherwise.
func selectorFor[T core.Number](useStats bool) median.Selector[T] {
	if useStats {
		if sel, ok := any(median.StatsSelector{}).(median.Selector[T]); ok {
			return sel
		}
	}
	return median.SortSelector[T]{}
}
