package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/cwbudde/algo-kickfilters/dsp/buffer"
	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// readSamples parses whitespace-separated numbers into a pooled buffer.
func readSamples(r io.Reader, pool *buffer.Pool[float64]) (*buffer.Buffer[float64], error) {
	b := pool.Get(0)
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			pool.Put(b)
			return nil, fmt.Errorf("sample %d: %w", b.Len(), err)
		}
		n := b.Len()
		if n == b.Cap() {
			b.Grow(max(64, 2*n))
		}
		b.Resize(n + 1)[n] = v
	}
	if err := sc.Err(); err != nil {
		pool.Put(b)
		return nil, err
	}
	return b, nil
}

// toInt16 narrows samples to int16, saturating at the type's range.
func toInt16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, v := range samples {
		out[i] = int16(core.Clamp(v, math.MinInt16, math.MaxInt16))
	}
	return out
}

func writeSamples[T core.Number](w io.Writer, samples []T) (int, error) {
	bw := bufio.NewWriter(w)
	for _, v := range samples {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return 0, err
		}
	}
	return len(samples), bw.Flush()
}
