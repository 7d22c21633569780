package core

// EnsureLen returns a slice of length n, reusing buf's capacity when it is
// large enough and allocating otherwise. Contents are unspecified after a
// reallocation; callers are expected to overwrite the full slice.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}

	if cap(buf) >= n {
		return buf[:n]
	}

	return make([]float64, n)
}
