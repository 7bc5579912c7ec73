package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	buf := make([]byte, 4*HeaderSize)
	off := uint64(HeaderSize) // second slot, to catch absolute/relative mixups

	SetBlockSize(buf, off, 0x1234)
	SetStatus(buf, off, StatusAllocated)
	SetPayload(buf, off, off+HeaderSize)
	SetPayloadEnd(buf, off, off+HeaderSize+100)
	SetPrev(buf, off, NilRef)
	SetNext(buf, off, 0x40)
	SetOrigin(buf, off, 3, 42)

	require.Equal(t, uint64(0x1234), BlockSize(buf, off))
	require.Equal(t, StatusAllocated, Status(buf, off))
	require.Equal(t, off+HeaderSize, Payload(buf, off))
	require.Equal(t, off+HeaderSize+100, PayloadEnd(buf, off))
	require.Equal(t, NilRef, Prev(buf, off))
	require.Equal(t, uint64(0x40), Next(buf, off))
	require.Equal(t, uint32(3), FileID(buf, off))
	require.Equal(t, uint32(42), Line(buf, off))

	// The first slot must be untouched.
	for i := 0; i < HeaderSize; i++ {
		require.Zero(t, buf[i], "leaked write at %d", i)
	}
}

func TestStatusTagsDistinct(t *testing.T) {
	require.NotEqual(t, StatusFree, StatusAllocated)
	require.NotZero(t, StatusFree)
	require.NotZero(t, StatusAllocated)
}
