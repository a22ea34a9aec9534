package buffer

import "sync"

// Pool provides sync.Pool-based reuse of fixed-shape Buffers to reduce GC
// pressure in real-time processing loops. The shape is set once at
// construction; Buffers never resize (the core has no dynamic resizing).
type Pool struct {
	channels int
	samples  int
	pool     sync.Pool
}

// NewPool returns a Pool handing out Buffers of the given shape.
func NewPool(channels, samples int) *Pool {
	p := &Pool{channels: channels, samples: samples}
	p.pool.New = func() any {
		return New(channels, samples)
	}

	return p
}

// Get returns a zeroed Buffer of the pool's shape.
// Callers must return it via Put when done.
func (p *Pool) Get() *Buffer {
	b := p.pool.Get().(*Buffer)
	if b.NumChannels() != p.channels || b.Len() != p.samples {
		// A recycled handle was Moved or Released while pooled.
		return New(p.channels, p.samples)
	}
	b.Zero()

	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
