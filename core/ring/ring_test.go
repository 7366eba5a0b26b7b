// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// ring_test.go — Contract tests for the single-owner byte ring buffer.
package ring

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

// TestBuffer_PushPopOrder checks the basic two-push drain contract.
func TestBuffer_PushPopOrder(t *testing.T) {
	rb, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer rb.Release()

	if err := rb.Push(10); err != nil {
		t.Fatalf("Push(10) failed: %v", err)
	}
	if err := rb.Push(20); err != nil {
		t.Fatalf("Push(20) failed: %v", err)
	}
	for _, want := range []byte{10, 20} {
		got, err := rb.Pop()
		if err != nil {
			t.Fatalf("Pop failed: %v", err)
		}
		if got != want {
			t.Fatalf("Expected %d, got %d", want, got)
		}
	}
	if _, err := rb.Pop(); !errors.Is(err, api.ErrEmpty) {
		t.Errorf("Expected ErrEmpty after drain, got %v", err)
	}
}

// TestBuffer_CapacityBound verifies at most Cap-1 pushes succeed.
func TestBuffer_CapacityBound(t *testing.T) {
	rb, err := New(5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer rb.Release()

	for i := byte(1); i <= 4; i++ {
		if err := rb.Push(i); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	if !rb.Full() {
		t.Error("Expected buffer full after 4 pushes into capacity 5")
	}
	if err := rb.Push(5); !errors.Is(err, api.ErrFull) {
		t.Errorf("Expected ErrFull, got %v", err)
	}
	if rb.Len() != 4 {
		t.Errorf("Len changed on failed push: %d", rb.Len())
	}
	for i := byte(1); i <= 4; i++ {
		got, err := rb.Pop()
		if err != nil || got != i {
			t.Fatalf("Expected %d, got %d (err=%v)", i, got, err)
		}
	}
	if _, err := rb.Pop(); !errors.Is(err, api.ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
	if !rb.Empty() {
		t.Error("Expected empty buffer after full drain")
	}
}

// TestBuffer_NoMutationOnFailure checks failed ops leave state untouched.
func TestBuffer_NoMutationOnFailure(t *testing.T) {
	rb, _ := New(3)
	defer rb.Release()

	rb.Push(1)
	rb.Push(2)
	if err := rb.Push(3); !errors.Is(err, api.ErrFull) {
		t.Fatalf("Expected ErrFull, got %v", err)
	}
	if rb.Len() != 2 {
		t.Errorf("Failed push mutated length: %d", rb.Len())
	}
	got, err := rb.Pop()
	if err != nil || got != 1 {
		t.Fatalf("Stored bytes disturbed by failed push: %d (err=%v)", got, err)
	}
	rb.Pop()
	if _, err := rb.Pop(); !errors.Is(err, api.ErrEmpty) {
		t.Fatalf("Expected ErrEmpty, got %v", err)
	}
	if rb.Len() != 0 {
		t.Errorf("Failed pop mutated length: %d", rb.Len())
	}
}

// TestBuffer_Wraparound cycles the cursors far past the capacity.
func TestBuffer_Wraparound(t *testing.T) {
	const capacity = 7
	rb, _ := New(capacity)
	defer rb.Release()

	next := byte(0)
	for i := 0; i < 10*capacity; i++ {
		if err := rb.Push(byte(i)); err != nil {
			t.Fatalf("Push failed at %d: %v", i, err)
		}
		got, err := rb.Pop()
		if err != nil || got != next {
			t.Fatalf("Expected %d, got %d (err=%v)", next, got, err)
		}
		next++
		if rb.Len() != 0 {
			t.Fatalf("Len drifted at %d: %d", i, rb.Len())
		}
	}
}

// TestBuffer_InvalidCapacity rejects degenerate sizes at construction.
func TestBuffer_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{-1, 0, 1} {
		if _, err := New(capacity); !errors.Is(err, api.ErrInvalidCapacity) {
			t.Errorf("New(%d): expected ErrInvalidCapacity, got %v", capacity, err)
		}
	}
}

// TestBuffer_ReleaseIdempotent checks double release and use-after-release.
func TestBuffer_ReleaseIdempotent(t *testing.T) {
	rb, _ := New(5)
	rb.Push(42)
	rb.Release()
	rb.Release() // must not fault or double-free

	if rb.Cap() != 0 || rb.Len() != 0 {
		t.Errorf("Release left state: cap=%d len=%d", rb.Cap(), rb.Len())
	}
	if err := rb.Push(1); !errors.Is(err, api.ErrReleased) {
		t.Errorf("Push after release: expected ErrReleased, got %v", err)
	}
	if _, err := rb.Pop(); !errors.Is(err, api.ErrReleased) {
		t.Errorf("Pop after release: expected ErrReleased, got %v", err)
	}
}

// TestBuffer_Reset drains in O(1) and keeps the storage usable.
func TestBuffer_Reset(t *testing.T) {
	rb, _ := New(5)
	defer rb.Release()

	rb.Push(1)
	rb.Push(2)
	rb.Reset()
	if !rb.Empty() || rb.Len() != 0 {
		t.Fatalf("Reset did not drain: len=%d", rb.Len())
	}
	if err := rb.Push(9); err != nil {
		t.Fatalf("Push after reset failed: %v", err)
	}
	got, err := rb.Pop()
	if err != nil || got != 9 {
		t.Fatalf("Expected 9 after reset, got %d (err=%v)", got, err)
	}
}

// TestBuffer_PageAlloc exercises the page-backed storage path end to end.
func TestBuffer_PageAlloc(t *testing.T) {
	rb, err := New(5, WithPageAlloc())
	if err != nil {
		t.Fatalf("New with page alloc failed: %v", err)
	}
	for i := byte(1); i <= 4; i++ {
		if err := rb.Push(i); err != nil {
			t.Fatalf("Push(%d) failed: %v", i, err)
		}
	}
	for i := byte(1); i <= 4; i++ {
		got, err := rb.Pop()
		if err != nil || got != i {
			t.Fatalf("Expected %d, got %d (err=%v)", i, got, err)
		}
	}
	rb.Release()
	rb.Release() // second unmap must be a no-op
}

// countingAllocator records Alloc/Free calls for release accounting.
type countingAllocator struct {
	allocs int
	frees  int
}

func (c *countingAllocator) Alloc(size int) []byte { c.allocs++; return make([]byte, size) }
func (c *countingAllocator) Free(region []byte)    { c.frees++ }

// TestBuffer_ReleaseExactlyOnce verifies the allocator sees one Free.
func TestBuffer_ReleaseExactlyOnce(t *testing.T) {
	alloc := &countingAllocator{}
	rb, err := New(8, WithAllocator(alloc))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	rb.Release()
	rb.Release()
	rb.Release()
	if alloc.allocs != 1 || alloc.frees != 1 {
		t.Errorf("Expected 1 alloc / 1 free, got %d / %d", alloc.allocs, alloc.frees)
	}
}

// BenchmarkBuffer_PushPop measures the hot cursor path.
func BenchmarkBuffer_PushPop(b *testing.B) {
	rb, _ := New(1024)
	defer rb.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rb.Push(byte(i))
		rb.Pop()
	}
}
