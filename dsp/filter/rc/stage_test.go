package rc

import (
	"testing"

	"github.com/cwbudde/algo-kickfilters/internal/testutil"
)

func TestStagesMatchBlockFunctions(t *testing.T) {
	src := testutil.DeterministicNoise(11, 50, 257)

	cases := []struct {
		name   string
		stage  func() interface{ ProcessBlockTo(dst, src []float64) }
		block  func(dst, src []float64)
		chunks []int
	}{
		{
			name:   "lowpass",
			stage:  func() interface{ ProcessBlockTo(dst, src []float64) } { return NewLowpassStage(8, 4) },
			block:  func(dst, src []float64) { Lowpass(dst, src, 8, 4) },
			chunks: []int{1, 16, 100, 140},
		},
		{
			name:   "highpass",
			stage:  func() interface{ ProcessBlockTo(dst, src []float64) } { return NewHighpassStage(0.7, 4) },
			block:  func(dst, src []float64) { Highpass(dst, src, 0.7, 4) },
			chunks: []int{2, 255},
		},
		{
			name:  "bandpass",
			stage: func() interface{ ProcessBlockTo(dst, src []float64) } { return NewBandpassStage(0.7, 8, 4) },
			block: func(dst, src []float64) {
				tmp := make([]float64, len(src))
				Bandpass(dst, tmp, src, 0.7, 8, 4)
			},
			chunks: []int{64, 64, 64, 65},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want := make([]float64, len(src))
			tc.block(want, src)

			got := make([]float64, len(src))
			st := tc.stage()
			pos := 0
			for _, n := range tc.chunks {
				st.ProcessBlockTo(got[pos:pos+n], src[pos:pos+n])
				pos += n
			}
			if pos != len(src) {
				t.Fatalf("chunks cover %d samples, want %d", pos, len(src))
			}

			testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
		})
	}
}

func TestStageResetRestartsEdgePolicy(t *testing.T) {
	hp := NewHighpassStage(1, 4)
	hp.ProcessSample(3)
	hp.ProcessSample(-2)
	hp.Reset()

	if y := hp.ProcessSample(9); y != 9 {
		t.Fatalf("first sample after Reset = %v, want passthrough 9", y)
	}

	lp := NewLowpassStage(1, 4)
	lp.ProcessSample(3)
	lp.Reset()
	if y := lp.ProcessSample(10); y != lp.Alpha()*10 {
		t.Fatalf("first sample after Reset = %v, want alpha*10", y)
	}
}

func TestStageStateRoundTrip(t *testing.T) {
	src := testutil.DeterministicNoise(5, 1, 64)

	lp := NewLowpassStage(5, 4)
	lp.ProcessBlockTo(make([]float64, 32), src[:32])
	y1, primed := lp.State()

	ref := make([]float64, 32)
	lp.ProcessBlockTo(ref, src[32:])

	lp.Reset()
	lp.SetState(y1, primed)
	got := make([]float64, 32)
	lp.ProcessBlockTo(got, src[32:])

	testutil.RequireSliceNearlyEqual(t, got, ref, 1e-12)

	hp := NewHighpassStage(5, 4)
	hp.ProcessBlockTo(make([]float64, 32), src[:32])
	x1, hy1, hprimed := hp.State()
	hp.ProcessBlockTo(ref, src[32:])
	hp.SetState(x1, hy1, hprimed)
	hp.ProcessBlockTo(got, src[32:])

	testutil.RequireSliceNearlyEqual(t, got, ref, 1e-12)
}

func TestStagesFlushIdleTail(t *testing.T) {
	lp := NewLowpassStage(10, 4)
	hp := NewHighpassStage(10, 4)
	lp.ProcessSample(1)
	hp.ProcessSample(0)
	hp.ProcessSample(1)
	for range 2000 {
		lp.ProcessSample(0)
		hp.ProcessSample(0)
	}

	if y1, _ := lp.State(); y1 != 0 {
		t.Fatalf("lowpass state = %g, want exact 0", y1)
	}
	if _, y1, _ := hp.State(); y1 != 0 {
		t.Fatalf("highpass state = %g, want exact 0", y1)
	}
}
