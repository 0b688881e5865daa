package stack

import (
	"math"

	wgrid "github.com/isciences/wsim/grid"
)

// Sum returns, for each (row, col), the sum of defined values, or NaN if
// none are defined (SPEC_FULL.md §4.D).
func Sum(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		if len(d) == 0 {
			return math.NaN()
		}
		sum := 0.0
		for _, x := range d {
			sum += x
		}
		return sum
	})
}

// Mean returns, for each (row, col), the mean of defined values, or NaN
// if none are defined.
func Mean(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		if len(d) == 0 {
			return math.NaN()
		}
		sum := 0.0
		for _, x := range d {
			sum += x
		}
		return sum / float64(len(d))
	})
}

// Min returns, for each (row, col), the minimum of defined values, or NaN
// if none are defined.
func Min(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		if len(d) == 0 {
			return math.NaN()
		}
		m := d[0]
		for _, x := range d[1:] {
			if x < m {
				m = x
			}
		}
		return m
	})
}

// Max returns, for each (row, col), the maximum of defined values, or NaN
// if none are defined.
func Max(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		if len(d) == 0 {
			return math.NaN()
		}
		m := d[0]
		for _, x := range d[1:] {
			if x > m {
				m = x
			}
		}
		return m
	})
}

// WhichMin returns, for each (row, col), the 1-based index of the first
// minimal defined value in the original (unsorted) depth vector, or NaN
// if none are defined.
func WhichMin(s *Stack) *wgrid.Grid {
	return whichExtreme(s, func(a, b float64) bool { return a < b })
}

// WhichMax returns, for each (row, col), the 1-based index of the first
// maximal defined value in the original (unsorted) depth vector, or NaN
// if none are defined.
func WhichMax(s *Stack) *wgrid.Grid {
	return whichExtreme(s, func(a, b float64) bool { return a > b })
}

func whichExtreme(s *Stack, better func(a, b float64) bool) *wgrid.Grid {
	out := wgrid.New(s.Rows, s.Cols)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			v := s.Slice(r, c)
			best := -1
			for i, x := range v {
				if wgrid.Missing(x) {
					continue
				}
				if best == -1 || better(x, v[best]) {
					best = i
				}
			}
			if best == -1 {
				continue // leave NaN
			}
			out.Set(r, c, float64(best+1))
		}
	}
	return out
}

// NumDefined returns, for each (row, col), the count of defined values.
func NumDefined(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		return float64(len(definedValues(v)))
	})
}

// FracDefined returns, for each (row, col), the count of defined values
// divided by Depth.
func FracDefined(s *Stack) *wgrid.Grid {
	depth := float64(s.Depth)
	return applyGrid(s, func(v []float64) float64 {
		return float64(len(definedValues(v))) / depth
	})
}

// FracDefinedAboveZero returns, for each (row, col), the fraction of
// defined values greater than zero, or NaN if none are defined.
func FracDefinedAboveZero(s *Stack) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		if len(d) == 0 {
			return math.NaN()
		}
		above := 0
		for _, x := range d {
			if x > 0 {
				above++
			}
		}
		return float64(above) / float64(len(d))
	})
}
