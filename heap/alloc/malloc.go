package alloc

import (
	"math"
	"math/bits"

	"github.com/heapkit/heapkit/internal/format"
)

// blockSizeFor computes the total block size for a payload of size bytes:
// header + payload + padding, padding per format.PaddingFor. Reports false
// when the sum would overflow instead of wrapping.
func blockSizeFor(size uint64) (uint64, bool) {
	padding := format.PaddingFor(size)
	if size > math.MaxUint64-padding-format.HeaderSize {
		return 0, false
	}
	return format.HeaderSize + size + padding, true
}

// Malloc returns a reference to size bytes of freshly-allocated memory and
// a slice over the payload. The memory is not initialized (it may hold the
// remains of earlier blocks). A zero size returns the null ref with no
// error and no failure recorded. On overflow or exhaustion it returns the
// null ref, records the failure against the requested size, and reports a
// sentinel error.
func (al *Allocator) Malloc(size uint64, org Origin) (Ref, []byte, error) {
	if size == 0 {
		return 0, nil, nil
	}

	blockSize, ok := blockSizeFor(size)
	if !ok {
		al.stats.recordFailure(size)
		return 0, nil, ErrOverflow
	}

	ref := al.findFreeSpace(blockSize, size, org)
	if ref == 0 {
		al.stats.recordFailure(size)
		return 0, nil, ErrNoSpace
	}

	al.stats.recordAlloc(size, ref)

	b := al.bytes()
	return ref, b[ref : ref+size], nil
}

// Calloc returns a zero-filled region big enough for count elements of
// size bytes each. A count*size overflow is recorded as a failed
// allocation of the requested element size.
func (al *Allocator) Calloc(count, size uint64, org Origin) (Ref, []byte, error) {
	if hi, _ := bits.Mul64(count, size); hi != 0 {
		al.stats.recordFailure(size)
		return 0, nil, ErrOverflow
	}

	ref, payload, err := al.Malloc(count*size, org)
	if ref != 0 {
		// The arena recycles memory, so the region may hold stale bytes.
		clear(payload)
	}
	return ref, payload, err
}

// findFreeSpace finds room for a block of blockSize bytes: the arena
// frontier first, then a first-fit scan over the block list. Returns the
// payload ref, or the null ref when both are exhausted.
func (al *Allocator) findFreeSpace(blockSize, payloadSize uint64, org Origin) Ref {
	fileID := al.intern(org.File)

	if off, ok := al.arena.Carve(blockSize); ok {
		al.engine.FrontierCarves++
		al.initAllocBlock(off, blockSize, payloadSize, fileID, uint32(org.Line))
		al.link(off)
		return off + format.HeaderSize
	}

	if logAlloc {
		logf("frontier exhausted: need=%d remaining=%d, scanning free list",
			blockSize, al.arena.Remaining())
	}

	return al.findFreedBlock(blockSize, payloadSize, fileID, uint32(org.Line))
}

// findFreedBlock linearly scans the block list for the first free block of
// at least blockSize bytes, converts it to allocated, and splits off any
// residual worth keeping.
func (al *Allocator) findFreedBlock(blockSize, payloadSize uint64, fileID, line uint32) Ref {
	b := al.bytes()
	for off := al.head; off != format.NilRef; off = format.Next(b, off) {
		if format.Status(b, off) != format.StatusFree || format.BlockSize(b, off) < blockSize {
			continue
		}

		al.engine.ListReuse++
		al.initAllocBlock(off, format.BlockSize(b, off), payloadSize, fileID, line)
		al.splitBlock(off, blockSize)
		return format.Payload(b, off)
	}
	return 0
}

// splitBlock carves the residual of an oversized block at off into a new
// free block, inserted into the list immediately before off's position,
// and shrinks off to exactly required bytes. Residuals smaller than one
// minimum block stay attached as padding.
func (al *Allocator) splitBlock(off, required uint64) {
	b := al.bytes()
	residual := format.BlockSize(b, off) - required
	if residual < format.MinBlockSize {
		return
	}

	al.engine.Splits++

	resOff := off + required
	al.initFreeBlock(resOff, residual, format.FileID(b, off), format.Line(b, off))
	al.insertBefore(resOff, off)
	format.SetBlockSize(b, off, required)
}
