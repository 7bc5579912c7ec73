package alloc

import "github.com/heapkit/heapkit/internal/format"

// Block list operations. The list is embedded in the block headers as
// offset links, threads every block in the arena regardless of status, and
// is never traversed by these three operations: each is O(1) given the
// block's own links. Ordering is structural (most recently created or
// moved first), not sorted by address, though consecutive nodes are always
// physically adjacent.

// link inserts the block at off at the list head.
func (al *Allocator) link(off uint64) {
	b := al.bytes()
	format.SetNext(b, off, al.head)
	format.SetPrev(b, off, format.NilRef)
	if al.head != format.NilRef {
		format.SetPrev(b, al.head, off)
	}
	al.head = off
}

// unlink removes the block at off from anywhere in the list, repairing
// both neighbors' links. Removing the head block advances the head.
func (al *Allocator) unlink(off uint64) {
	if al.head == format.NilRef {
		return
	}

	b := al.bytes()
	next := format.Next(b, off)
	prev := format.Prev(b, off)

	if off == al.head {
		al.head = next
	}
	if next != format.NilRef {
		format.SetPrev(b, next, prev)
	}
	if prev != format.NilRef {
		format.SetNext(b, prev, next)
	}
}

// insertBefore places the block at off into the list immediately before
// the block at anchor. Inserting before the head block makes off the new
// head, keeping the head the frontier-side end of the list.
func (al *Allocator) insertBefore(off, anchor uint64) {
	b := al.bytes()
	format.SetNext(b, off, anchor)
	format.SetPrev(b, off, format.Prev(b, anchor))
	if p := format.Prev(b, anchor); p != format.NilRef {
		format.SetNext(b, p, off)
	}
	format.SetPrev(b, anchor, off)

	if anchor == al.head {
		al.head = off
	}
}
