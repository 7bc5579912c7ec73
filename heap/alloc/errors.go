package alloc

import "errors"

var (
	// ErrNoSpace indicates the arena frontier and the free list are both
	// exhausted for the requested size.
	ErrNoSpace = errors.New("alloc: no space for allocation")

	// ErrOverflow indicates the block size computation (or the count*size
	// product in Calloc) overflows the address-space size type.
	ErrOverflow = errors.New("alloc: size computation overflows")
)
