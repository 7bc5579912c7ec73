// Package report renders allocator statistics and leak reports to an
// output stream.
package report

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/heapkit/heapkit/heap/alloc"
)

// Statistics writes the allocation counters in the classic fixed-width
// two-line layout.
func Statistics(w io.Writer, s alloc.Stats) {
	fmt.Fprintf(w, "alloc count: active %10d   total %10d   fail %10d\n",
		s.NActive, s.NTotal, s.NFail)
	fmt.Fprintf(w, "alloc size:  active %10d   total %10d   fail %10d\n",
		s.ActiveSize, s.TotalSize, s.FailSize)
}

// Leaks writes one line per still-active allocation, naming the origin,
// payload address, and payload size of each, and returns how many were
// found. Balanced use produces no output.
func Leaks(w io.Writer, al *alloc.Allocator) int {
	leaks := al.Leaks()
	for _, l := range leaks {
		fmt.Fprintf(w, "LEAK CHECK: %s:%d: allocated object %#x with size %d\n",
			l.File, l.Line, l.Ref, l.Size)
	}
	return len(leaks)
}

// Summary writes a human-readable statistics block with grouped digits,
// for interactive use where the fixed-width layout is too terse.
func Summary(w io.Writer, s alloc.Stats) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "allocations:  %d active (%d bytes), %d total (%d bytes)\n",
		s.NActive, s.ActiveSize, s.NTotal, s.TotalSize)
	p.Fprintf(w, "failures:     %d (%d bytes requested)\n", s.NFail, s.FailSize)
	if s.HeapMax != 0 {
		p.Fprintf(w, "heap range:   %#x - %#x\n", s.HeapMin, s.HeapMax)
	}
}
