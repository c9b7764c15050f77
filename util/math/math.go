package math

// IsPowerOfTwo reports whether given integer is a power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// CeilToPowerOfTwo returns the least power of two integer value greater than
// or equal to n. Non-positive n yields 0.
func CeilToPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	if n <= 2 {
		return n
	}
	u := uint64(n) - 1
	u |= u >> 1
	u |= u >> 2
	u |= u >> 4
	u |= u >> 8
	u |= u >> 16
	u |= u >> 32
	return int(u + 1)
}
