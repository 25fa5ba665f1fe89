package buffer

import (
	"sync"

	"github.com/cwbudde/algo-kickfilters/dsp/core"
)

// Pool provides sync.Pool-based Buffer reuse for block-by-block input.
type Pool[T core.Number] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T core.Number]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a zeroed Buffer with the requested length. Callers must
// return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool. The caller must not use it afterwards.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
