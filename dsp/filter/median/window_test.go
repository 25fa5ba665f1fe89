package median

import (
	"testing"

	"github.com/cwbudde/algo-kickfilters/internal/testutil"
)

func TestWindow(t *testing.T) {
	w := NewWindow[int](3, nil)
	if w.Median() != 0 || w.Len() != 0 {
		t.Fatalf("empty window: median %d len %d", w.Median(), w.Len())
	}

	steps := []struct {
		add  int
		want int
		n    int
	}{
		{add: 5, want: 5, n: 1},
		{add: 3, want: 4, n: 2},
		{add: 8, want: 5, n: 3},
		{add: 1, want: 3, n: 3}, // ring now 1, 3, 8
		{add: 9, want: 8, n: 3}, // 1, 9, 8
	}
	for i, s := range steps {
		w.Add(s.add)
		if got := w.Median(); got != s.want || w.Len() != s.n {
			t.Fatalf("step %d: median %d len %d, want %d len %d", i, got, w.Len(), s.want, s.n)
		}
	}

	w.Reset()
	if w.Len() != 0 {
		t.Fatalf("Len after Reset = %d", w.Len())
	}
}

func TestWindowMatchesFilter(t *testing.T) {
	const order = 5
	src := testutil.DeterministicNoise(11, 50, 100)

	dst := make([]float64, RequiredLen(len(src), order, 1))
	n := Filter(dst, make([]float64, order), make([]float64, order), src, order, 1)

	w := NewWindow[float64](order, StatsSelector{})
	got := make([]float64, 0, n)
	for i, x := range src {
		w.Add(x)
		if i >= order-1 {
			got = append(got, w.Median())
		}
	}
	testutil.RequireSliceNearlyEqual(t, got, dst[order:order+n], 1e-12)
}
