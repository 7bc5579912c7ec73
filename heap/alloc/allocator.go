package alloc

import (
	"fmt"
	"io"
	"os"

	"github.com/heapkit/heapkit/heap"
	"github.com/heapkit/heapkit/internal/format"
)

// Allocator is the debugging allocator engine. It owns the block list and
// statistics for one arena. Create instances with New; the zero value is
// not usable.
//
// Not safe for concurrent use.
type Allocator struct {
	arena *heap.Arena

	// head is the block list head: the most recently created or moved
	// block, format.NilRef when the list is empty. The list threads every
	// block in the arena regardless of status, and consecutive nodes are
	// physically adjacent (head side = frontier side).
	head uint64

	// Interned origin file names; header FileID fields index this table.
	// Slot 0 is the unknown origin.
	files   []string
	fileIDs map[string]uint32

	stats  Stats
	engine engineStats

	out   io.Writer
	fatal func()
}

// New creates an allocator over the given arena.
//
// Parameters:
//   - arena: The backing region, freshly reserved or already in use by
//     nothing else
//   - config: Environment hooks (use nil for DefaultConfig)
func New(arena *heap.Arena, config *Config) *Allocator {
	if config == nil {
		config = &DefaultConfig
	}

	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	fatal := config.Fatal
	if fatal == nil {
		fatal = func() { os.Exit(1) }
	}

	return &Allocator{
		arena:   arena,
		head:    format.NilRef,
		files:   []string{"?"},
		fileIDs: map[string]uint32{"?": 0},
		out:     out,
		fatal:   fatal,
	}
}

// Arena returns the backing arena.
func (al *Allocator) Arena() *heap.Arena {
	return al.arena
}

func (al *Allocator) bytes() []byte {
	return al.arena.Bytes()
}

// intern maps a file name to its stable table index.
func (al *Allocator) intern(file string) uint32 {
	if file == "" {
		return 0
	}
	if id, ok := al.fileIDs[file]; ok {
		return id
	}
	id := uint32(len(al.files))
	al.files = append(al.files, file)
	al.fileIDs[file] = id
	return id
}

// file resolves an interned file index; out-of-range indexes (a corrupted
// header read before the corruption was detected) resolve to the unknown
// origin.
func (al *Allocator) file(id uint32) string {
	if int(id) >= len(al.files) {
		return al.files[0]
	}
	return al.files[id]
}

// Leak describes one still-active allocation found by Leaks.
type Leak struct {
	File string
	Line int
	Ref  Ref
	Size uint64
}

// Leaks walks the block list once and returns every block still allocated,
// in list order. An empty result means balanced use.
func (al *Allocator) Leaks() []Leak {
	b := al.bytes()
	var leaks []Leak
	for off := al.head; off != format.NilRef; off = format.Next(b, off) {
		if format.Status(b, off) != format.StatusAllocated {
			continue
		}
		leaks = append(leaks, Leak{
			File: al.file(format.FileID(b, off)),
			Line: int(format.Line(b, off)),
			Ref:  format.Payload(b, off),
			Size: al.payloadSize(off),
		})
	}
	return leaks
}

// memoryBug writes a fatal diagnostic identifying the offending call site,
// then terminates via the configured handler. It returns only when a test
// handler chooses not to kill the process.
func (al *Allocator) memoryBug(org Origin, msg string, args ...any) {
	fmt.Fprintf(al.out, "MEMORY BUG: %s: ", org)
	fmt.Fprintf(al.out, msg, args...)
	fmt.Fprintln(al.out)
	al.fatal()
}
