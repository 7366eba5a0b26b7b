// File: core/ring/options.go
// Package ring defines functional options for buffer construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

// Option customizes buffer initialization.
type Option func(*config)

type config struct {
	alloc Allocator
}

// WithPageAlloc backs the storage region with OS pages (mmap on Linux,
// VirtualAlloc on Windows) instead of the Go heap. Falls back to the
// heap when page allocation is unavailable or fails.
func WithPageAlloc() Option {
	return func(c *config) {
		c.alloc = newPageAllocator()
	}
}

// WithAllocator overrides the storage allocator entirely.
func WithAllocator(a Allocator) Option {
	return func(c *config) {
		c.alloc = a
	}
}
