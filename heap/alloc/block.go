package alloc

import "github.com/heapkit/heapkit/internal/format"

// Block header initialization. These rewrite a header in place on every
// status transition; they never touch the Prev/Next links, which belong to
// the list operations in list.go.

// initBlock writes the fields common to free and allocated blocks.
func (al *Allocator) initBlock(off, blockSize uint64, fileID, line uint32) {
	b := al.bytes()
	format.SetBlockSize(b, off, blockSize)
	format.SetPayload(b, off, off+format.HeaderSize)
	format.SetOrigin(b, off, fileID, line)
}

// initAllocBlock marks the block at off allocated for a payload of
// payloadSize bytes and stamps the guard pattern after the payload.
// blockSize must already include header, payload, and padding, with the
// padding large enough for the guard.
func (al *Allocator) initAllocBlock(off, blockSize, payloadSize uint64, fileID, line uint32) {
	al.initBlock(off, blockSize, fileID, line)

	b := al.bytes()
	end := off + format.HeaderSize + payloadSize
	format.SetStatus(b, off, format.StatusAllocated)
	format.SetPayloadEnd(b, off, end)
	format.WriteGuard(b, end)
}

// initFreeBlock marks the block at off free. A free block has no valid
// payload end.
func (al *Allocator) initFreeBlock(off, blockSize uint64, fileID, line uint32) {
	al.initBlock(off, blockSize, fileID, line)

	b := al.bytes()
	format.SetStatus(b, off, format.StatusFree)
	format.SetPayloadEnd(b, off, 0)
}

// payloadSize returns the payload size of an allocated block.
func (al *Allocator) payloadSize(off uint64) uint64 {
	b := al.bytes()
	return format.PayloadEnd(b, off) - format.Payload(b, off)
}

// headerValid checks that off could be a header for the payload at ref:
// the header must sit on an alignment boundary, and if its payload field
// holds anything it must point at ref.
func (al *Allocator) headerValid(off uint64, ref Ref) bool {
	if off%format.Alignment != 0 {
		return false
	}
	payload := format.Payload(al.bytes(), off)
	return payload == 0 || payload == ref
}
