// File: core/ring/alloc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage allocator contract for ring buffers. The region returned by
// Alloc may be longer than requested (page rounding); the buffer slices
// its capacity off the front and hands the full region back to Free.

package ring

// Allocator provides and reclaims a ring's backing storage.
type Allocator interface {
	// Alloc returns a region of at least size bytes.
	Alloc(size int) []byte

	// Free reclaims a region previously returned by Alloc.
	// Must tolerate being called once per region at most.
	Free(region []byte)
}

// heapAllocator is the default Go-heap backend.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) []byte { return make([]byte, size) }

// Free is a no-op: the GC reclaims heap regions once unreferenced.
func (heapAllocator) Free(region []byte) {}
