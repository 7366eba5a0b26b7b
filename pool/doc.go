// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reuse layer for hioload-ring staging buffers.
// Implements a bounded FIFO free list of drained ring buffers so that
// producer/consumer cycles on hot paths avoid per-cycle allocation.
// See ringpool.go for implementation details.
package pool
