package alloc

// Stats is the process-wide allocation aggregate. Counters only grow
// (except the active pair, which shrinks on free) and are never reset.
type Stats struct {
	NActive    uint64 // live allocations
	ActiveSize uint64 // live payload bytes
	NTotal     uint64 // allocations ever
	TotalSize  uint64 // payload bytes ever
	NFail      uint64 // failed allocations
	FailSize   uint64 // requested bytes of failed allocations

	// Smallest payload offset and largest payload end ever handed out.
	// Free's not-in-heap check uses this range. Zero means untouched.
	HeapMin uint64
	HeapMax uint64
}

func (s *Stats) recordAlloc(size uint64, ref Ref) {
	s.NTotal++
	s.NActive++
	s.TotalSize += size
	s.ActiveSize += size

	if s.HeapMin == 0 || ref < s.HeapMin {
		s.HeapMin = ref
	}
	if end := ref + size; s.HeapMax == 0 || end > s.HeapMax {
		s.HeapMax = end
	}
}

func (s *Stats) recordFree(size uint64) {
	s.NActive--
	s.ActiveSize -= size
}

func (s *Stats) recordFailure(size uint64) {
	s.NFail++
	s.FailSize += size
}

// Stats returns a point-in-time copy of the aggregate.
func (al *Allocator) Stats() Stats {
	return al.stats
}

// engineStats holds internal engine counters.
type engineStats struct {
	FrontierCarves   int // blocks carved from raw arena capacity
	ListReuse        int // blocks converted from the free list
	Splits           int // residuals split off oversized free blocks
	CoalesceForward  int // merges absorbing the following block
	CoalesceBackward int // merges into the preceding block
	Retractions      int // frontier retreats over a trailing free block
}

// DebugStats returns current engine counters (test-only).
// This is used by test utilities to inspect allocator behavior.
func (al *Allocator) DebugStats() engineStats {
	return al.engine
}
