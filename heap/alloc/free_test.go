package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreeNull(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	al.Free(0, Here())
	require.Empty(t, out.String())
	require.Equal(t, Stats{}, al.Stats())
}

func TestDoubleFreeIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	ref, _ := mustMalloc(t, al, 128)
	al.Free(ref, Here())

	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(ref, Origin{File: "client.go", Line: 99})
	})
	require.Contains(t, out.String(), "MEMORY BUG: client.go:99: invalid free of pointer")
	require.Contains(t, out.String(), "double free")
}

func TestFreeNotInHeapIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	_, _ = mustMalloc(t, al, 128)

	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(1<<40, Origin{File: "client.go", Line: 7})
	})
	require.Contains(t, out.String(), "not in heap")
}

func TestFreeBeforeAnyAllocationIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	// With no allocations the observed heap range is empty, so any
	// pointer is foreign.
	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(128, Here())
	})
	require.Contains(t, out.String(), "not in heap")
}

func TestFreeInsidePayloadIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	// Zero-filled payload: the fake header the engine reads under the
	// interior pointer is all zeroes, which is neither status tag.
	ref, _, err := al.Calloc(1, 1000, Origin{File: "client.go", Line: 31})
	require.NoError(t, err)
	require.NotZero(t, ref)

	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(ref+160, Origin{File: "client.go", Line: 32})
	})
	require.Contains(t, out.String(), "MEMORY BUG: client.go:32: invalid free of pointer")
	require.Contains(t, out.String(), "not allocated")
	require.Contains(t, out.String(),
		"is 160 bytes inside a 1000 byte region allocated here")
	require.Contains(t, out.String(), "client.go:31")
}

func TestFreeMisalignedPointerIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	ref, _ := mustMalloc(t, al, 128)

	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(ref+3, Here())
	})
	require.Contains(t, out.String(), "not allocated")
}

func TestWildWriteIsFatal(t *testing.T) {
	al, out := newTestAllocator(t, 1<<16)

	ref, buf := mustMalloc(t, al, 100)
	fillPattern(buf, 0x01)

	// Stomp one byte past the declared payload end, where the guard
	// pattern lives.
	al.Arena().Bytes()[ref+100] ^= 0xFF

	require.PanicsWithValue(t, abortSentinel, func() {
		al.Free(ref, Origin{File: "client.go", Line: 55})
	})
	require.Contains(t, out.String(),
		"MEMORY BUG: client.go:55: detected wild write during free of pointer")
}

func TestFreeUpdatesStats(t *testing.T) {
	al, _ := newTestAllocator(t, 1<<16)

	ref1, _ := mustMalloc(t, al, 300)
	ref2, _ := mustMalloc(t, al, 500)

	s := al.Stats()
	require.Equal(t, uint64(2), s.NActive)
	require.Equal(t, uint64(800), s.ActiveSize)

	al.Free(ref1, Here())
	s = al.Stats()
	require.Equal(t, uint64(1), s.NActive)
	require.Equal(t, uint64(500), s.ActiveSize)
	require.Equal(t, uint64(2), s.NTotal)
	require.Equal(t, uint64(800), s.TotalSize)

	al.Free(ref2, Here())
	s = al.Stats()
	require.Equal(t, uint64(0), s.NActive)
	require.Equal(t, uint64(0), s.ActiveSize)
}
