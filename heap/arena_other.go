//go:build !linux && !darwin && !freebsd

package heap

// Reserve obtains size bytes of zeroed, writable memory. On platforms
// without anonymous mmap support the region is ordinary heap memory; the
// allocator's behavior is identical either way.
func Reserve(size uint64) (*Arena, error) {
	if size == 0 {
		return nil, ErrBadSize
	}
	return &Arena{data: make([]byte, size)}, nil
}

// Close releases the region. The arena and every slice obtained from Bytes
// become invalid.
func (a *Arena) Close() error {
	if a.data == nil {
		return ErrClosed
	}
	a.data = nil
	a.pos = 0
	return nil
}
