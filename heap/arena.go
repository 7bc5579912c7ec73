package heap

import "errors"

// DefaultSize is the arena size used when the caller does not choose one.
const DefaultSize = 8 << 20 // 8 MiB

var (
	// ErrBadSize indicates a zero or unmappable arena size.
	ErrBadSize = errors.New("heap: arena size must be positive")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("heap: arena is closed")
)

// Arena is one contiguous byte region with a monotonically advancing
// frontier. It is created by Reserve, lives for the process, and is unmapped
// by Close. Not safe for concurrent use.
type Arena struct {
	data   []byte
	pos    uint64
	mapped bool
}

// Bytes returns the backing region. The slice stays valid until Close; the
// arena never moves or resizes, so offsets into it are stable.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the total capacity of the arena.
func (a *Arena) Size() uint64 {
	return uint64(len(a.data))
}

// Frontier returns the current high-water mark. Bytes at and beyond it have
// never been carved into a block.
func (a *Arena) Frontier() uint64 {
	return a.pos
}

// Remaining returns the raw capacity left beyond the frontier.
func (a *Arena) Remaining() uint64 {
	return uint64(len(a.data)) - a.pos
}

// Carve advances the frontier by n bytes and returns the offset of the carved
// region. Returns false without moving the frontier when n exceeds the
// remaining capacity.
func (a *Arena) Carve(n uint64) (uint64, bool) {
	if n > a.Remaining() {
		return 0, false
	}
	off := a.pos
	a.pos += n
	return off, true
}

// Retract moves the frontier back by n bytes, reclaiming trailing space.
// The caller must guarantee that the reclaimed range holds no live block.
func (a *Arena) Retract(n uint64) {
	if n > a.pos {
		panic("heap: retract past arena start")
	}
	a.pos -= n
}
