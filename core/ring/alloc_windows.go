//go:build windows
// +build windows

// File: core/ring/alloc_windows.go
// Package ring: Windows page-backed storage via VirtualAlloc.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package ring

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const pageSize = 4 << 10

type pageAllocator struct {
	mapped bool
}

func newPageAllocator() Allocator { return &pageAllocator{} }

func (a *pageAllocator) Alloc(size int) []byte {
	length := (size + pageSize - 1) &^ (pageSize - 1)
	addr, err := windows.VirtualAlloc(0, uintptr(length),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return make([]byte, size)
	}
	a.mapped = true
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
}

func (a *pageAllocator) Free(region []byte) {
	if !a.mapped || len(region) == 0 {
		return
	}
	a.mapped = false
	windows.VirtualFree(uintptr(unsafe.Pointer(&region[0])), 0, windows.MEM_RELEASE)
}
