// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling API: reuse of staging rings across producer/consumer cycles.

package api

// RingPool provides reusable ByteRing instances for high-intensity staging.
type RingPool interface {
	// Get returns a drained ring, allocating one when the free list is empty.
	Get() (ByteRing, error)

	// Put returns a ring to the pool; the ring must not be used afterwards.
	Put(r ByteRing)

	// Stats exposes resource/accounting metrics for observability.
	Stats() RingPoolStats

	// Close releases all idle rings. Subsequent Get calls fail.
	Close()
}

// RingPoolStats aggregates ring allocation/reuse stats.
type RingPoolStats struct {
	TotalAlloc int64 // rings constructed by the pool
	TotalFree  int64 // rings released instead of requeued
	Reused     int64 // Gets satisfied from the free list
	InUse      int64 // rings currently checked out
	Idle       int64 // rings waiting on the free list
}
