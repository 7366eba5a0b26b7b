// File: pool/ringpool.go
// Package pool implements ring buffer reuse with FIFO free-listing.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingPool hands out drained fixed-capacity byte rings and takes them
// back after a staging cycle. The rings themselves stay single-owner;
// only the pool's bookkeeping is goroutine-safe.

package pool

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/core/ring"
)

// Ensure compile-time interface compliance.
var _ api.RingPool = (*RingPool)(nil)

const defaultMaxIdle = 64

// RingPool is a bounded free list of equally sized ring buffers.
type RingPool struct {
	mu       sync.Mutex
	freeList *queue.Queue // FIFO of idle *ring.Buffer
	capacity int
	maxIdle  int
	opts     []ring.Option
	closed   bool
	stats    api.RingPoolStats
}

// NewRingPool builds a pool producing rings of the given capacity.
// maxIdle bounds the free list; values <= 0 select the default.
// Construction options (page alloc etc.) apply to every pooled ring.
func NewRingPool(capacity, maxIdle int, opts ...ring.Option) (*RingPool, error) {
	if capacity < 2 {
		return nil, api.ErrInvalidCapacity
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdle
	}
	return &RingPool{
		freeList: queue.New(),
		capacity: capacity,
		maxIdle:  maxIdle,
		opts:     opts,
	}, nil
}

// Get returns a drained ring, reusing an idle one when available.
func (p *RingPool) Get() (api.ByteRing, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, api.NewError(api.ErrCodeClosed, api.ErrPoolClosed, "get on closed ring pool").
			WithContext("capacity", p.capacity)
	}
	if p.freeList.Length() > 0 {
		rb := p.freeList.Remove().(*ring.Buffer)
		p.stats.Reused++
		p.stats.InUse++
		return rb, nil
	}
	rb, err := ring.New(p.capacity, p.opts...)
	if err != nil {
		return nil, err
	}
	p.stats.TotalAlloc++
	p.stats.InUse++
	return rb, nil
}

// Put returns a ring to the pool; the caller must not use it afterwards.
// Rings of foreign capacity, released rings, and overflow beyond maxIdle
// are released instead of requeued.
func (p *RingPool) Put(r api.ByteRing) {
	rb, ok := r.(*ring.Buffer)
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stats.InUse > 0 {
		p.stats.InUse--
	}
	if !ok || rb.Cap() != p.capacity || p.closed || p.freeList.Length() >= p.maxIdle {
		r.Release()
		p.stats.TotalFree++
		return
	}
	rb.Reset()
	p.freeList.Add(rb)
}

// Stats returns a snapshot of pool accounting.
func (p *RingPool) Stats() api.RingPoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := p.stats
	s.Idle = int64(p.freeList.Length())
	return s
}

// Close releases every idle ring and fails subsequent Gets.
// Rings currently checked out remain valid; Put releases them.
func (p *RingPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for p.freeList.Length() > 0 {
		p.freeList.Remove().(*ring.Buffer).Release()
		p.stats.TotalFree++
	}
}
