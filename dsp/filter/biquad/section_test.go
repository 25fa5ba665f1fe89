package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// smoothing is a stable two-pole lowpass used across the tests.
func smoothing() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

// bandStop60 rejects 60 Hz at 500 Hz with pole radius 0.8.
func bandStop60() Coefficients {
	cw := math.Cos(2 * math.Pi * 60 / 500)
	return Coefficients{B0: 1, B1: -2 * cw, B2: 1, A1: -2 * 0.8 * cw, A2: 0.64}
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSampleHandTraced(t *testing.T) {
	// n=0: y=0.25,  d0=0.5+0.05=0.55,     d1=0.25-0.01=0.24
	// n=1: y=0.55,  d0=0.11+0.24=0.35,    d1=-0.022
	// n=2: y=0.35,  d0=0.07-0.022=0.048,  d1=-0.014
	// n=3: y=0.048
	s := NewSection(smoothing())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestDirectFormOneEquivalence(t *testing.T) {
	// DF-II-T from zero state equals the direct-form recurrence with zero
	// history: y = B0 x + B1 x1 + B2 x2 - A1 y1 - A2 y2.
	c := bandStop60()
	s := NewSection(c)
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.1, -0.6}

	var x1, x2, y1, y2 float64
	for i, x := range input {
		want := c.B0*x + c.B1*x1 + c.B2*x2 - c.A1*y1 - c.A2*y2
		x2, x1 = x1, x
		y2, y1 = y1, want

		if got := s.ProcessSample(x); !almostEqual(got, want, 1e-12) {
			t.Fatalf("sample %d: DF2T=%.15f, DF1=%.15f", i, got, want)
		}
	}
}

func TestProcessBlockVariantsMatchSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, -0.1}

	ref := make([]float64, len(input))
	s := NewSection(smoothing())
	for i, x := range input {
		ref[i] = s.ProcessSample(x)
	}

	block := append([]float64(nil), input...)
	NewSection(smoothing()).ProcessBlock(block)

	to := make([]float64, len(input))
	NewSection(smoothing()).ProcessBlockTo(to, input)

	for i := range ref {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
		if !almostEqual(to[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlockTo=%.15f, ProcessSample=%.15f", i, to[i], ref[i])
		}
	}
}

func TestProcessToNarrowsWithoutFeedback(t *testing.T) {
	src := []int16{100, 100, 100, 100, 100}
	dst := make([]int16, len(src))
	ProcessTo(NewSection(smoothing()), dst, src)

	ref := NewSection(smoothing())
	for i, x := range src {
		want := int16(ref.ProcessSample(float64(x)))
		if dst[i] != want {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}

	// Empty input must not touch dst.
	ProcessTo(NewSection(smoothing()), dst[:0], []int16{})
}

func TestResetAndState(t *testing.T) {
	s := NewSection(smoothing())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()
	if saved == [2]float64{0, 0} {
		t.Fatal("state should be non-zero after processing")
	}

	y3 := s.ProcessSample(-0.3)
	s.SetState(saved)
	if y3b := s.ProcessSample(-0.3); !almostEqual(y3, y3b, eps) {
		t.Errorf("after SetState got %v, want %v", y3b, y3)
	}

	s.Reset()
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("state not zero after reset: %v", st)
	}
}

func TestStableSectionDecays(t *testing.T) {
	s := NewSection(bandStop60())
	s.ProcessSample(1)
	for range 5000 {
		s.ProcessSample(0)
	}
	st := s.State()
	if math.Abs(st[0]) > 1e-100 || math.Abs(st[1]) > 1e-100 {
		t.Errorf("state did not decay: %v", st)
	}
}
