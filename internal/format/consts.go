package format

// Binary layout constants for the block header that prefixes every block in
// the arena, free or allocated. All multi-byte fields are little-endian.

const (
	// HeaderSize is the size of the block header in bytes. The header is
	// padded so that payloads start on an Alignment boundary.
	HeaderSize = 64

	// Alignment is the boundary every block must start and end on.
	Alignment = 16

	// AlignmentMask is Alignment - 1, for rounding arithmetic.
	AlignmentMask = Alignment - 1

	// GuardSize is the length of the guard pattern written immediately
	// after every allocated payload.
	GuardSize = 8

	// MinBlockSize is the smallest block worth carving: a header plus one
	// alignment unit of payload space. Split residuals below this size are
	// absorbed into the allocated block instead.
	MinBlockSize = HeaderSize + Alignment
)

// Header field offsets.
const (
	HdrBlockSize  = 0x00 // u64: total block size (header + payload + padding)
	HdrStatus     = 0x08 // u64: StatusFree or StatusAllocated
	HdrPayload    = 0x10 // u64: arena offset of the payload start
	HdrPayloadEnd = 0x18 // u64: arena offset where the guard begins; 0 when free
	HdrPrev       = 0x20 // u64: list link, NilRef when none
	HdrNext       = 0x28 // u64: list link, NilRef when none
	HdrFileID     = 0x30 // u32: index into the allocator's interned file table
	HdrLine       = 0x34 // u32: source line of the originating request
)

// Block status tags. An explicit two-variant tag rather than a pointer
// sentinel: any other value in the status field means the bytes are not a
// header at all.
const (
	StatusFree      uint64 = 1
	StatusAllocated uint64 = 2
)

// NilRef is the null value for list links and block references.
const NilRef = ^uint64(0)
