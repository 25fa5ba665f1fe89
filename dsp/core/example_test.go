package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

func ExampleApplyTimebaseOptions() {
	tb := core.ApplyTimebaseOptions(core.WithSamplePeriodMs(2))

	fmt.Printf("sampleRate=%.0f periodMs=%.1f\n", tb.SampleRate, tb.PeriodMs())

	// Output:
	// sampleRate=500 periodMs=2.0
}

func ExampleEnsureLen() {
	buf := make([]int16, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)

	copied := core.CopyInto(buf[2:], []int16{3, 4})
	fmt.Println(copied, buf)

	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// 2 [1 2 3 4]
	// [0 0 3 4]
}
