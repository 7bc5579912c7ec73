package format

// Typed accessors for the block header fields. All take the arena byte slice
// and the absolute offset of the header. Callers are responsible for bounds:
// a header offset is valid only if off+HeaderSize is within the arena.

// BlockSize reads the total block size field.
func BlockSize(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrBlockSize)
}

// SetBlockSize writes the total block size field.
func SetBlockSize(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrBlockSize, v)
}

// Status reads the status tag.
func Status(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrStatus)
}

// SetStatus writes the status tag.
func SetStatus(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrStatus, v)
}

// Payload reads the payload offset field.
func Payload(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrPayload)
}

// SetPayload writes the payload offset field.
func SetPayload(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrPayload, v)
}

// PayloadEnd reads the payload end field (where the guard begins).
func PayloadEnd(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrPayloadEnd)
}

// SetPayloadEnd writes the payload end field.
func SetPayloadEnd(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrPayloadEnd, v)
}

// Prev reads the previous-block list link.
func Prev(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrPrev)
}

// SetPrev writes the previous-block list link.
func SetPrev(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrPrev, v)
}

// Next reads the next-block list link.
func Next(b []byte, off uint64) uint64 {
	return ReadU64(b, int(off)+HdrNext)
}

// SetNext writes the next-block list link.
func SetNext(b []byte, off, v uint64) {
	PutU64(b, int(off)+HdrNext, v)
}

// FileID reads the interned origin file index.
func FileID(b []byte, off uint64) uint32 {
	return ReadU32(b, int(off)+HdrFileID)
}

// Line reads the origin line number.
func Line(b []byte, off uint64) uint32 {
	return ReadU32(b, int(off)+HdrLine)
}

// SetOrigin writes the interned origin file index and line number.
func SetOrigin(b []byte, off uint64, fileID, line uint32) {
	PutU32(b, int(off)+HdrFileID, fileID)
	PutU32(b, int(off)+HdrLine, line)
}
