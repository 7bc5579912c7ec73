package format

// Alignment utilities for block layout. Every block must start and end on an
// Alignment boundary, and its padding must be able to hold the guard pattern.

// AlignUp returns n aligned up to the next Alignment boundary.
//
// Example:
//
//	AlignUp(1)  = 16
//	AlignUp(16) = 16
//	AlignUp(17) = 32
func AlignUp(n uint64) uint64 {
	return (n + AlignmentMask) & ^uint64(AlignmentMask)
}

// PaddingFor returns the padding for a payload of n bytes: enough to land the
// block end on an Alignment boundary, widened by one more Alignment unit when
// the natural padding could not hold the guard pattern.
func PaddingFor(n uint64) uint64 {
	padding := uint64(Alignment) - (HeaderSize+n)%Alignment
	if padding < GuardSize {
		padding += Alignment
	}
	return padding
}
