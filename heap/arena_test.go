package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserveAndClose(t *testing.T) {
	a, err := Reserve(1 << 16)
	require.NoError(t, err)

	require.Equal(t, uint64(1<<16), a.Size())
	require.Equal(t, uint64(0), a.Frontier())
	require.Equal(t, a.Size(), a.Remaining())
	require.Len(t, a.Bytes(), 1<<16)

	// Freshly reserved memory must be zeroed and writable.
	data := a.Bytes()
	require.Zero(t, data[0])
	require.Zero(t, data[len(data)-1])
	data[0] = 0xAA
	data[len(data)-1] = 0xBB

	require.NoError(t, a.Close())
	require.ErrorIs(t, a.Close(), ErrClosed)
}

func TestReserveZeroSize(t *testing.T) {
	_, err := Reserve(0)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestCarveRetract(t *testing.T) {
	a, err := Reserve(4096)
	require.NoError(t, err)
	defer a.Close()

	off1, ok := a.Carve(1024)
	require.True(t, ok)
	require.Equal(t, uint64(0), off1)
	require.Equal(t, uint64(1024), a.Frontier())

	off2, ok := a.Carve(1024)
	require.True(t, ok)
	require.Equal(t, uint64(1024), off2)
	require.Equal(t, uint64(2048), a.Remaining())

	// Oversized carve fails without moving the frontier.
	_, ok = a.Carve(4096)
	require.False(t, ok)
	require.Equal(t, uint64(2048), a.Frontier())

	// Exact-fit carve consumes the rest.
	_, ok = a.Carve(2048)
	require.True(t, ok)
	require.Equal(t, uint64(0), a.Remaining())

	a.Retract(2048)
	require.Equal(t, uint64(2048), a.Frontier())

	require.Panics(t, func() { a.Retract(4096) })
}
