package stack

// Select extracts, for each (row, col), the n values of the depth vector
// starting at the 1-based index start, filling with fill wherever the
// requested index falls outside [1, Depth] (SPEC_FULL.md §4.D). The
// result is a new Stack of depth n.
func Select(s *Stack, start, n int, fill float64) *Stack {
	out := New(s.Rows, s.Cols, n)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			src := s.Slice(r, c)
			dst := out.Slice(r, c)
			for i := 0; i < n; i++ {
				idx := start - 1 + i
				if idx < 0 || idx >= len(src) {
					dst[i] = fill
					continue
				}
				dst[i] = src[idx]
			}
		}
	}
	return out
}
