package util

func CopyBytes(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}

// WipeBytes best-effort zeroes the provided byte slice in place.
func WipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// PadRight returns a copy of b extended with zero bytes to at least n bytes.
// Slices already n bytes or longer are copied unchanged.
func PadRight(b []byte, n int) []byte {
	if len(b) >= n {
		return CopyBytes(b)
	}
	dst := make([]byte, n)
	copy(dst, b)
	return dst
}
