// File: core/ring/ring.go
// Package ring implements the byte ring buffer core.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is a bounded circular byte buffer with head/tail cursors.
// One slot is reserved so that head == tail always means empty and
// never full; usable capacity is therefore Cap()-1. No fill counter
// exists, the cursors alone carry the state.
// Implements api.ByteRing for cross-package consistency.

package ring

import (
	"github.com/momentics/hioload-ring/api"
)

// Ensure compile-time interface compliance.
var _ api.ByteRing = (*Buffer)(nil)

// Buffer is a single-owner byte ring buffer.
//
// head indexes the next free slot to write, tail the oldest occupied
// slot to read. Both stay in [0, capacity) for the whole Ready lifetime.
// The zero value is unusable; construct with New.
type Buffer struct {
	storage  []byte
	region   []byte // full allocation backing storage, kept for release
	head     int
	tail     int
	capacity int
	free     func([]byte)
}

// New allocates a ring buffer of the requested capacity.
//
// capacity counts total slots including the reserved one: to hold N
// bytes simultaneously, request N+1. Capacities below 2 leave no index
// space or no usable slot and are rejected with api.ErrInvalidCapacity.
func New(capacity int, opts ...Option) (*Buffer, error) {
	if capacity < 2 {
		return nil, api.ErrInvalidCapacity
	}
	cfg := config{alloc: heapAllocator{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	region := cfg.alloc.Alloc(capacity)
	return &Buffer{
		storage:  region[:capacity],
		region:   region,
		capacity: capacity,
		free:     cfg.alloc.Free,
	}, nil
}

// Push appends one byte; returns api.ErrFull without mutation when only
// the reserved slot remains. The candidate head is computed before the
// write so a full buffer is never touched.
func (b *Buffer) Push(v byte) error {
	if b.storage == nil {
		return api.ErrReleased
	}
	next := b.head + 1
	if next >= b.capacity {
		next = 0
	}
	if next == b.tail {
		return api.ErrFull
	}
	b.storage[b.head] = v
	b.head = next
	return nil
}

// Pop removes and returns the oldest byte; returns api.ErrEmpty without
// mutation when head == tail. The vacated slot is not cleared, it is
// simply eligible for overwrite by a later Push.
func (b *Buffer) Pop() (byte, error) {
	if b.storage == nil {
		return 0, api.ErrReleased
	}
	if b.head == b.tail {
		return 0, api.ErrEmpty
	}
	next := b.tail + 1
	if next >= b.capacity {
		next = 0
	}
	v := b.storage[b.tail]
	b.tail = next
	return v, nil
}

// Len returns the number of buffered bytes, in [0, Cap()-1].
func (b *Buffer) Len() int {
	if b.capacity == 0 {
		return 0
	}
	return (b.head - b.tail + b.capacity) % b.capacity
}

// Cap returns total allocated slots, including the reserved one.
// A released buffer reports 0.
func (b *Buffer) Cap() int { return b.capacity }

// Usable returns the maximum number of bytes the buffer holds at once.
func (b *Buffer) Usable() int {
	if b.capacity == 0 {
		return 0
	}
	return b.capacity - 1
}

// Empty reports whether no byte is buffered.
func (b *Buffer) Empty() bool { return b.head == b.tail }

// Full reports whether the next Push would return api.ErrFull.
func (b *Buffer) Full() bool {
	if b.storage == nil {
		return false
	}
	next := b.head + 1
	if next >= b.capacity {
		next = 0
	}
	return next == b.tail
}

// Reset drains the buffer in O(1) by rewinding both cursors.
// Storage is retained; old contents are not cleared.
func (b *Buffer) Reset() {
	b.head = 0
	b.tail = 0
}

// Release frees the storage region and zeroes the cursors and capacity.
// Idempotent: second and later calls are no-ops. Push/Pop after Release
// return api.ErrReleased; re-initialization means calling New again.
func (b *Buffer) Release() {
	if b.region == nil {
		return
	}
	b.free(b.region)
	b.region = nil
	b.storage = nil
	b.head = 0
	b.tail = 0
	b.capacity = 0
}
