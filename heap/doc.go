// Package heap manages the single fixed-size memory region backing all
// allocations.
//
// The region is obtained once, at Reserve, as an anonymous private mapping
// (plain heap memory on platforms without mmap) and is never resized. A
// frontier cursor marks the high-water mark: bytes beyond it have never been
// carved into a block. Carve advances the frontier; Retract hands trailing
// space back when the most recently carved block is released.
//
// The arena knows nothing about blocks or headers. Block layout lives in
// internal/format and the allocation engine in heap/alloc.
package heap
