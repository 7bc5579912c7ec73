package alloc

import (
	"fmt"

	"github.com/heapkit/heapkit/internal/format"
)

// Free releases the allocation at ref. A null ref is a no-op. Every
// integrity violation is fatal: freeing a pointer outside the heap, a
// pointer that was never returned by an allocation, a pointer freed twice,
// or a block whose guard pattern has been overwritten. The heap cannot be
// trusted past any of these, so the allocator reports and terminates
// rather than guess.
func (al *Allocator) Free(ref Ref, org Origin) {
	if ref == 0 {
		return
	}

	if ref < al.stats.HeapMin || ref > al.stats.HeapMax {
		al.memoryBug(org, "invalid free of pointer %#x, not in heap", ref)
		return
	}

	b := al.bytes()
	hdr := ref - format.HeaderSize

	if !al.headerValid(hdr, ref) {
		al.memoryBug(org, "invalid free of pointer %#x, not allocated", ref)
		return
	}

	switch format.Status(b, hdr) {
	case format.StatusAllocated:
		// Live block, proceed.
	case format.StatusFree:
		al.memoryBug(org, "invalid free of pointer %#x, double free", ref)
		return
	default:
		// Neither tag: ref points into the middle of some block's
		// payload, not at a header at all.
		fmt.Fprintf(al.out, "MEMORY BUG: %s: invalid free of pointer %#x, not allocated\n", org, ref)
		al.reportInsideBlock(ref)
		al.fatal()
		return
	}

	end := format.PayloadEnd(b, hdr)
	if end < ref || end+format.GuardSize > al.arena.Size() || !format.CheckGuard(b, end) {
		al.memoryBug(org, "detected wild write during free of pointer %#x", ref)
		return
	}

	al.stats.recordFree(end - ref)

	al.initFreeBlock(hdr, format.BlockSize(b, hdr), al.intern(org.File), uint32(org.Line))
	al.coalesce(hdr)
	al.retractFrontier()
}

// coalesce opportunistically merges the freed block at hdr with its list
// neighbors. List neighbors are physically adjacent, so a merge is a size
// addition plus an unlink: the previous neighbor (the physically following
// block) is absorbed into hdr, then hdr is absorbed into its next neighbor
// (the physically preceding block). Never scans beyond immediate
// neighbors.
func (al *Allocator) coalesce(hdr uint64) {
	b := al.bytes()

	if prev := format.Prev(b, hdr); prev != format.NilRef && format.Status(b, prev) == format.StatusFree {
		al.engine.CoalesceForward++
		format.SetBlockSize(b, hdr, format.BlockSize(b, hdr)+format.BlockSize(b, prev))
		al.unlink(prev)
	}

	if next := format.Next(b, hdr); next != format.NilRef && format.Status(b, next) == format.StatusFree {
		al.engine.CoalesceBackward++
		format.SetBlockSize(b, next, format.BlockSize(b, next)+format.BlockSize(b, hdr))
		al.unlink(hdr)
	}
}

// retractFrontier reclaims trailing free space: while the block at the
// list head is free and ends exactly at the frontier, the frontier
// retreats over it and the block leaves the list. Future allocations then
// reuse raw arena capacity instead of the free list.
func (al *Allocator) retractFrontier() {
	b := al.bytes()
	for al.head != format.NilRef && format.Status(b, al.head) == format.StatusFree {
		size := format.BlockSize(b, al.head)
		if al.head+size != al.arena.Frontier() {
			break
		}
		al.arena.Retract(size)
		al.engine.Retractions++
		al.unlink(al.head)
	}
}

// reportInsideBlock scans the block list for the allocated block enclosing
// ref and reports how far inside its payload the pointer falls, along with
// the origin of that allocation.
func (al *Allocator) reportInsideBlock(ref Ref) {
	b := al.bytes()
	for off := al.head; off != format.NilRef; off = format.Next(b, off) {
		if format.Status(b, off) != format.StatusAllocated {
			continue
		}
		payload := format.Payload(b, off)
		end := format.PayloadEnd(b, off)
		if payload <= ref && ref < end {
			fmt.Fprintf(al.out, "  %s:%d: %#x is %d bytes inside a %d byte region allocated here\n",
				al.file(format.FileID(b, off)), format.Line(b, off), ref, ref-payload, end-payload)
			return
		}
	}
}
