//go:build linux
// +build linux

// File: core/ring/alloc_linux.go
// Package ring: Linux page-backed storage via anonymous mmap.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Regions are rounded up to the 4 KiB page boundary and unmapped on
// release. Fallback to the Go heap if the mapping fails.

package ring

import (
	"golang.org/x/sys/unix"
)

const pageSize = 4 << 10

// pageAllocator owns at most one region per buffer lifetime.
type pageAllocator struct {
	mapped bool
}

func newPageAllocator() Allocator { return &pageAllocator{} }

func (a *pageAllocator) Alloc(size int) []byte {
	length := (size + pageSize - 1) &^ (pageSize - 1)
	data, err := unix.Mmap(-1, 0, length,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size)
	}
	a.mapped = true
	return data
}

// Free returns the pages to the OS exactly once; heap fallbacks are
// left to the GC.
func (a *pageAllocator) Free(region []byte) {
	if !a.mapped {
		return
	}
	a.mapped = false
	unix.Munmap(region)
}
