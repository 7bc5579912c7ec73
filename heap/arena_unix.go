//go:build linux || darwin || freebsd

package heap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve obtains size bytes of zeroed, writable memory as an anonymous
// private mapping. The mapping is placed by the kernel and never moves.
func Reserve(size uint64) (*Arena, error) {
	if size == 0 {
		return nil, ErrBadSize
	}

	data, err := unix.Mmap(
		-1,
		0,
		int(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE,
	)
	if err != nil {
		return nil, fmt.Errorf("heap: mmap failed: %w", err)
	}

	return &Arena{data: data, mapped: true}, nil
}

// Close returns the region to the operating system. The arena and every
// slice obtained from Bytes become invalid.
func (a *Arena) Close() error {
	if a.data == nil {
		return ErrClosed
	}
	var err error
	if a.mapped {
		err = unix.Munmap(a.data)
	}
	a.data = nil
	a.pos = 0
	return err
}
