package alloc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCoalesceAnyOrder frees three adjacent blocks in every order and
// verifies they merge into one contiguous free region of the combined
// size: an allocation sized to the exact sum must land at the first
// block's position.
func TestCoalesceAnyOrder(t *testing.T) {
	blockSize, ok := blockSizeFor(256)
	require.True(t, ok)
	barrierSize, ok := blockSizeFor(64)
	require.True(t, ok)

	// Payload whose block consumes exactly three merged blocks.
	merged := 3*blockSize - 64 - 16 // header + minimal padding

	orders := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, order := range orders {
		t.Run(fmt.Sprintf("%v", order), func(t *testing.T) {
			al, _ := newTestAllocator(t, 3*blockSize+barrierSize)

			var refs [3]Ref
			for i := range refs {
				refs[i], _ = mustMalloc(t, al, 256)
			}
			// Barrier keeps the frontier from retracting over the trio.
			barrier, _ := mustMalloc(t, al, 64)

			for _, i := range order {
				al.Free(refs[i], Here())
			}

			// Three blocks merge with exactly two coalesce operations.
			d := al.DebugStats()
			require.Equal(t, 2, d.CoalesceForward+d.CoalesceBackward)
			require.Equal(t, 0, d.Retractions)

			// The merged region is one block: an exact-sum allocation
			// reuses it wholesale, at the first block's position.
			ref, _ := mustMalloc(t, al, merged)
			require.Equal(t, refs[0], ref)
			require.Equal(t, 1, al.DebugStats().ListReuse)
			require.Equal(t, 0, al.DebugStats().Splits)

			al.Free(ref, Here())
			al.Free(barrier, Here())
			require.Empty(t, al.Leaks())
		})
	}
}

func TestFrontierRetraction(t *testing.T) {
	al, _ := newTestAllocator(t, 1<<16)

	refA, _ := mustMalloc(t, al, 256)
	refB, _ := mustMalloc(t, al, 256)

	frontier := al.Arena().Frontier()
	al.Free(refB, Here())

	require.Equal(t, 1, al.DebugStats().Retractions)
	require.Less(t, al.Arena().Frontier(), frontier)

	// The reclaimed capacity is raw again: the next allocation carves
	// the frontier at the same spot instead of searching the list.
	refC, _ := mustMalloc(t, al, 256)
	require.Equal(t, refB, refC)
	require.Equal(t, 3, al.DebugStats().FrontierCarves)
	require.Equal(t, 0, al.DebugStats().ListReuse)

	al.Free(refC, Here())
	al.Free(refA, Here())
}

// TestFrontierRetractionAfterCoalesce frees an interior block first, then
// the frontier block: the merge hands the whole run back to the frontier
// in one retraction.
func TestFrontierRetractionAfterCoalesce(t *testing.T) {
	al, _ := newTestAllocator(t, 1<<16)

	refA, _ := mustMalloc(t, al, 256)
	refB, _ := mustMalloc(t, al, 256)

	al.Free(refA, Here())
	require.Equal(t, 0, al.DebugStats().Retractions, "interior block cannot retract")

	al.Free(refB, Here())
	d := al.DebugStats()
	require.Equal(t, 1, d.CoalesceBackward+d.CoalesceForward)
	require.Equal(t, 1, d.Retractions)
	require.Equal(t, uint64(0), al.Arena().Frontier())
	require.Empty(t, al.Leaks())
}

func TestSplitOversizedFreeBlock(t *testing.T) {
	bigSize, ok := blockSizeFor(1000)
	require.True(t, ok)
	barrierSize, ok := blockSizeFor(64)
	require.True(t, ok)
	al, _ := newTestAllocator(t, bigSize+barrierSize)

	refA, _ := mustMalloc(t, al, 1000)
	barrier, _ := mustMalloc(t, al, 64)
	al.Free(refA, Here())

	// The frontier is exhausted, so this reuses the freed block and
	// splits off the residual.
	ref1, buf1 := mustMalloc(t, al, 256)
	require.Equal(t, refA, ref1)
	require.Equal(t, 1, al.DebugStats().ListReuse)
	require.Equal(t, 1, al.DebugStats().Splits)
	fillPattern(buf1, 0x11)

	// The residual serves the next allocation.
	ref2, buf2 := mustMalloc(t, al, 600)
	require.Greater(t, ref2, ref1)
	require.Equal(t, 2, al.DebugStats().ListReuse)
	fillPattern(buf2, 0x22)

	// Splitting must not have corrupted the first carve.
	checkPattern(t, buf1, 0x11, len(buf1))

	al.Free(ref1, Here())
	al.Free(ref2, Here())
	al.Free(barrier, Here())
	require.Empty(t, al.Leaks())
}

// TestSmallResidualAbsorbed verifies that a residual below the minimum
// block size stays attached to the allocation instead of becoming an
// unusable sliver.
func TestSmallResidualAbsorbed(t *testing.T) {
	size, ok := blockSizeFor(256)
	require.True(t, ok)
	barrierSize, ok := blockSizeFor(64)
	require.True(t, ok)
	al, _ := newTestAllocator(t, size+barrierSize)

	refA, _ := mustMalloc(t, al, 256)
	barrier, _ := mustMalloc(t, al, 64)
	al.Free(refA, Here())

	// 240 needs a block 16 bytes smaller than the freed one: the
	// residual is under the minimum, so no split happens.
	ref, _ := mustMalloc(t, al, 240)
	require.Equal(t, refA, ref)
	require.Equal(t, 0, al.DebugStats().Splits)

	al.Free(ref, Here())
	al.Free(barrier, Here())
	require.Empty(t, al.Leaks())
}
