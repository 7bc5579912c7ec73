package format

// GuardPattern is written immediately after every allocated payload and
// verified byte-for-byte on free. A mismatch means the caller wrote past the
// end of its allocation.
var GuardPattern = [GuardSize]byte{0x44, 0x45, 0x41, 0x44, 0x43, 0x30, 0x44, 0x45}

// WriteGuard stamps the guard pattern at the given offset.
func WriteGuard(b []byte, off uint64) {
	copy(b[off:off+GuardSize], GuardPattern[:])
}

// CheckGuard reports whether the guard pattern at the given offset is intact.
func CheckGuard(b []byte, off uint64) bool {
	for i, m := range GuardPattern {
		if b[off+uint64(i)] != m {
			return false
		}
	}
	return true
}
