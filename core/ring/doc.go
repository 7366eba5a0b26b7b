// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity single-owner byte ring buffer for hioload-ring.
// Storage is allocated once at construction and released exactly once;
// Push/Pop are O(1) cursor moves with no locking and no suspension point.
// See ring.go for the cursor arithmetic, alloc_*.go for storage backends.
package ring
