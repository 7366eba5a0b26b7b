//go:build !linux && !windows
// +build !linux,!windows

// File: core/ring/alloc_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap-only storage for platforms without a page allocator backend.

package ring

func newPageAllocator() Allocator { return heapAllocator{} }
