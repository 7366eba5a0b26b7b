// Package api
// Author: momentics@gmail.com
//
// Single-owner byte ring buffer for producer/consumer staging.

package api

// ByteRing is a fixed-capacity circular byte buffer contract.
//
// Implementations are owned by one logical caller at a time and provide
// no internal synchronization. Full and Empty outcomes are ordinary
// flow-control results, not failures to escalate.
type ByteRing interface {
	// Push appends one byte, returns ErrFull if no usable slot remains.
	Push(b byte) error
	// Pop removes the oldest byte, returns ErrEmpty if none is present.
	Pop() (byte, error)
	// Len returns the current number of buffered bytes.
	Len() int
	// Cap returns total allocated slots, one of which is reserved.
	Cap() int
	// Release frees the storage region. Idempotent.
	Release()
}
