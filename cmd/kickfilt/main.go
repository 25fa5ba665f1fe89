// Command kickfilt runs the biosignal filters over a block of samples.
//
// Usage:
//
//	kickfilt [flags] < samples.txt
//
// Samples are whitespace-separated numbers read from stdin or -in. The
// filtered block is written to stdout, one value per line. Diagnostics go
// to stderr in logfmt.
//
// Examples:
//
//	kickfilt -filter bandpass -fc 0.5 -fc2 40 -fs 250 < ecg.txt
//	kickfilt -filter notch -fc 50 -r 0.9 -info
//	kickfilt -filter median -order 5 -int16 -in raw.txt
//	kickfilt -filter lowpass -fc 15 -dt 4 -block 32 < ecg.txt
//	kickfilt -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/cwbudde/algo-kickfilters/dsp/buffer"
	"github.com/cwbudde/algo-kickfilters/dsp/core"
	"github.com/cwbudde/algo-kickfilters/dsp/filter/notch"
)

type config struct {
	filter   string
	fc, fc2  float64
	r        float64
	tb       core.Timebase
	order    int
	window   int
	asInt16  bool
	useStats bool
	block    int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("kickfilt", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var cfg config
	fs.StringVar(&cfg.filter, "filter", "bandpass", "filter to apply (see -list)")
	fs.Float64Var(&cfg.fc, "fc", 0.5, "cutoff or centre frequency in Hz (bandpass: lower edge)")
	fs.Float64Var(&cfg.fc2, "fc2", 40, "bandpass upper edge in Hz")
	fs.Float64Var(&cfg.r, "r", notch.DefaultPoleRadius, "notch pole radius in (0, 1)")
	fs.IntVar(&cfg.order, "order", 5, "window length for average and median")
	fs.IntVar(&cfg.window, "window", 1, "median window stride")
	fs.BoolVar(&cfg.asInt16, "int16", false, "truncate samples to int16 and filter in integer arithmetic")
	fs.BoolVar(&cfg.useStats, "stats", false, "median: use the montanaflynn/stats selector")
	fs.IntVar(&cfg.block, "block", 0, "process in blocks of this many samples with streaming state (0 = one block)")
	rate := fs.Float64("fs", core.DefaultTimebase().SampleRate, "sample rate in Hz")
	period := fs.Float64("dt", 0, "sample period in ms (overrides -fs)")
	in := fs.String("in", "", "read samples from file instead of stdin")
	info := fs.Bool("info", false, "print the filter design summary instead of filtering")
	validate := fs.Bool("validate", false, "reject out-of-range parameters before filtering")
	list := fs.Bool("list", false, "list available filters")
	logLevel := fs.String("log.level", "info", "log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: kickfilt [flags] < samples\n\n")
		fmt.Fprintf(stderr, "Filters whitespace-separated samples and prints one value per line.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  kickfilt -filter bandpass -fc 0.5 -fc2 40 -fs 250 < ecg.txt\n")
		fmt.Fprintf(stderr, "  kickfilt -filter notch -fc 50 -r 0.9 -info\n")
		fmt.Fprintf(stderr, "  kickfilt -list\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := newLogger(stderr, *logLevel)

	if *list {
		printList(stdout)
		return 0
	}

	cfg.filter = strings.ToLower(strings.TrimSpace(cfg.filter))
	e, ok := lookup(cfg.filter)
	if !ok {
		level.Error(logger).Log("msg", "unknown filter", "filter", cfg.filter)
		return 2
	}
	cfg.tb = core.ApplyTimebaseOptions(core.WithSampleRate(*rate), core.WithSamplePeriodMs(*period))
	level.Debug(logger).Log("msg", "configured", "filter", cfg.filter, "fs", cfg.tb.SampleRate, "dt_ms", cfg.tb.PeriodMs())

	if *info {
		if err := printInfo(stdout, cfg); err != nil {
			level.Error(logger).Log("msg", "failed to print design summary", "err", err)
			return 1
		}
		return 0
	}

	r := stdin
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			level.Error(logger).Log("msg", "failed to open input", "file", *in, "err", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	pool := buffer.NewPool[float64]()
	samples, err := readSamples(r, pool)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read samples", "err", err)
		return 1
	}
	defer pool.Put(samples)
	level.Info(logger).Log("msg", "read samples", "count", samples.Len())

	if *validate {
		if err := e.validate(cfg, samples.Len()); err != nil {
			level.Error(logger).Log("msg", "invalid parameters", "filter", cfg.filter, "err", err)
			return 1
		}
	}

	var written int
	switch {
	case cfg.block > 0:
		if cfg.asInt16 {
			level.Warn(logger).Log("msg", "-int16 is ignored in block mode")
		}
		written, err = writeSamples(stdout, runStream(cfg, samples.Samples()))
	case cfg.asInt16:
		if cfg.useStats {
			level.Warn(logger).Log("msg", "-stats needs float samples, using the sorting selector")
		}
		src := toInt16(samples.Samples())
		ws := buffer.NewWorkspace[int16](len(src), cfg.order)
		written, err = writeSamples(stdout, apply(ws, cfg, src))
	default:
		ws := buffer.NewWorkspace[float64](samples.Len(), cfg.order)
		written, err = writeSamples(stdout, apply(ws, cfg, samples.Samples()))
	}
	if err != nil {
		level.Error(logger).Log("msg", "failed to write output", "err", err)
		return 1
	}
	level.Info(logger).Log("msg", "filtered", "filter", cfg.filter, "in", samples.Len(), "out", written)
	return 0
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	var opt level.Option
	switch strings.ToLower(lvl) {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	return level.NewFilter(logger, opt)
}
