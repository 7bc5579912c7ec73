package alloc

import "github.com/heapkit/heapkit/internal/format"

// Realloc resizes the allocation at ref to hold size bytes, as
// allocate-copy-free rather than in-place growth. A null ref behaves like
// Malloc. A zero size returns the null ref without freeing the original.
// When the fresh allocation fails the original block is left untouched, so
// a failed resize never loses the caller's data.
func (al *Allocator) Realloc(ref Ref, size uint64, org Origin) (Ref, []byte, error) {
	if size == 0 {
		return 0, nil, nil
	}

	newRef, payload, err := al.Malloc(size, org)
	if ref == 0 || err != nil {
		return newRef, payload, err
	}

	b := al.bytes()

	// Copy min(size, old payload size) bytes, then release the original.
	// Bound the header read first; a garbage ref is left for Free to
	// diagnose.
	if ref >= format.HeaderSize && ref <= al.arena.Size() {
		oldHdr := ref - format.HeaderSize
		n := al.payloadSize(oldHdr)
		if n > al.arena.Size()-ref {
			n = al.arena.Size() - ref
		}
		if size < n {
			n = size
		}
		copy(payload[:n], b[ref:ref+n])
	}

	al.Free(ref, org)
	return newRef, payload, nil
}
