package batch

import "sync"

// Pool hands out Builders of one shape. Each call borrows its own builder,
// so concurrent callers never share a scratch matrix while allocations are
// still reused across calls.
type Pool struct {
	dim      int
	capacity int
	pool     sync.Pool
}

// NewPool returns a pool of builders with capacity rows of dim elements.
func NewPool(dim, capacity int) *Pool {
	p := &Pool{dim: dim, capacity: max(1, capacity)}
	p.pool.New = func() any {
		return NewBuilder(p.dim, p.capacity)
	}
	return p
}

// Get borrows a builder. Return it with Put when the call is done.
func (p *Pool) Get() *Builder {
	return p.pool.Get().(*Builder)
}

// Put returns b to the pool. Builders of a different shape are dropped.
func (p *Pool) Put(b *Builder) {
	if b == nil || b.Dim() != p.dim || b.Capacity() != p.capacity {
		return
	}
	p.pool.Put(b)
}

// Capacity returns the rows per batch of pooled builders.
func (p *Pool) Capacity() int {
	return p.capacity
}
