package alloc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heapkit/heapkit/heap"
)

// abortSentinel is what the test fatal handler panics with, so tests can
// assert that an operation aborted without killing the test process.
const abortSentinel = "memory bug abort"

// newTestAllocator builds an allocator over a fresh arena whose fatal
// handler panics with abortSentinel and whose diagnostics land in the
// returned buffer.
func newTestAllocator(t testing.TB, size uint64) (*Allocator, *bytes.Buffer) {
	t.Helper()

	arena, err := heap.Reserve(size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = arena.Close() })

	out := &bytes.Buffer{}
	al := New(arena, &Config{
		Output: out,
		Fatal:  func() { panic(abortSentinel) },
	})
	return al, out
}

// mustMalloc allocates or fails the test.
func mustMalloc(t testing.TB, al *Allocator, size uint64) (Ref, []byte) {
	t.Helper()

	ref, buf, err := al.Malloc(size, Here())
	require.NoError(t, err)
	require.NotZero(t, ref)
	require.Len(t, buf, int(size))
	return ref, buf
}

// fillPattern writes a deterministic byte pattern derived from seed.
func fillPattern(buf []byte, seed byte) {
	for i := range buf {
		buf[i] = seed + byte(i)
	}
}

// checkPattern verifies the first n bytes of the pattern written by
// fillPattern.
func checkPattern(t testing.TB, buf []byte, seed byte, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		require.Equal(t, seed+byte(i), buf[i], "pattern mismatch at offset %d", i)
	}
}
