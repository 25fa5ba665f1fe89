package average

// Stage is a streaming moving average over a ring of the last order inputs.
type Stage struct {
	buf  []float64
	pos  int
	fill int
	sum  float64
}

// NewStage returns a Stage averaging order samples. order below 1 is
// treated as 1.
func NewStage(order int) *Stage {
	return &Stage{buf: make([]float64, max(order, 1))}
}

// Order returns the window length.
func (s *Stage) Order() int { return len(s.buf) }

// Push adds x and returns the mean of the last Order samples. ok is false
// until the window has filled.
func (s *Stage) Push(x float64) (mean float64, ok bool) {
	s.sum += x - s.buf[s.pos]
	s.buf[s.pos] = x
	s.pos++
	if s.pos == len(s.buf) {
		s.pos = 0
		// Resum once per lap; the running sum accumulates rounding error.
		s.sum = 0
		for _, v := range s.buf {
			s.sum += v
		}
	}
	if s.fill < len(s.buf) {
		s.fill++
	}
	if s.fill < len(s.buf) {
		return 0, false
	}
	return s.sum / float64(len(s.buf)), true
}

// ProcessBlockTo pushes src and writes every available mean to dst,
// returning the count written. dst must hold len(src) values.
func (s *Stage) ProcessBlockTo(dst, src []float64) int {
	n := 0
	for _, x := range src {
		if m, ok := s.Push(x); ok {
			dst[n] = m
			n++
		}
	}
	return n
}

// Reset clears the window.
func (s *Stage) Reset() {
	clear(s.buf)
	s.pos = 0
	s.fill = 0
	s.sum = 0
}
