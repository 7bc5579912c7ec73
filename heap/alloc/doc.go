// Package alloc implements a debugging allocator over a single fixed arena.
//
// # Overview
//
// The allocator is a drop-in replacement for the malloc/free/calloc/realloc
// family, intended for development and testing. On top of ordinary
// allocation it detects heap corruption (wild writes past a payload),
// double frees, and invalid frees, reports leaks, and keeps allocation
// statistics. Every operation carries the call site that requested it, so
// diagnostics and leak reports name the offending line.
//
// # Engine
//
// Every block, free or allocated, is prefixed by a fixed 64-byte header
// (see internal/format) carrying its size, a two-variant status tag, its
// payload bounds, the origin of the request, and doubly-linked list links.
// The links are arena offsets, not pointers, so the whole structure lives
// inside the arena bytes; the only side table is the interned file-name
// list the origin field indexes into.
//
// Allocation carves from the arena frontier first. When the frontier is
// exhausted it falls back to a first-fit scan of the block list; an
// oversized free block is split and the residual is inserted into the list
// immediately before it. Freeing coalesces the block with free list
// neighbors (which are always physically adjacent) and retracts the
// frontier while the block at the list head is free.
//
// # Failure model
//
// Recoverable failures (zero size, size-computation overflow, exhaustion)
// return a null ref plus a sentinel error and bump the failure counters.
// Integrity violations (double free, foreign pointer, guard damage,
// corrupted header) are fatal: a diagnostic naming the call site is
// written to the configured output and the process is terminated.
// Continuing past a corrupted heap would only corrupt it further.
//
// # Usage
//
//	arena, err := heap.Reserve(heap.DefaultSize)
//	if err != nil {
//	    return err
//	}
//	defer arena.Close()
//
//	al := alloc.New(arena, nil)
//
//	ref, buf, err := al.Malloc(256, alloc.Here())
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//	al.Free(ref, alloc.Here())
//
// # Thread safety
//
// Allocator instances are not thread-safe. The engine assumes a single
// thread of control; a concurrent port must serialize every operation with
// one mutex guarding the arena, the block list, and the statistics.
//
// # Related packages
//
//   - github.com/heapkit/heapkit/heap: the backing arena
//   - github.com/heapkit/heapkit/heap/report: statistics and leak printers
//   - github.com/heapkit/heapkit/internal/format: block header layout
package alloc
