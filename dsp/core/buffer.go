package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// AddInto accumulates src into dst element-wise over the shorter length and
// returns the number of accumulated elements.
func AddInto(dst, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] += src[i]
	}
	return n
}
