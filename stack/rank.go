package stack

import (
	"math"

	wgrid "github.com/isciences/wsim/grid"
)

// MinRank returns, for each (row, col), one plus the count of obs values
// strictly less than data's value at that cell (SPEC_FULL.md §4.D). A
// cell whose data value is undefined yields NaN; a cell whose obs vector
// has no defined values yields 1.
func MinRank(data *wgrid.Grid, obs *Stack) *wgrid.Grid {
	return rank(data, obs, func(x, o float64) bool { return o < x })
}

// MaxRank returns, for each (row, col), one plus the count of obs values
// less than or equal to data's value at that cell.
func MaxRank(data *wgrid.Grid, obs *Stack) *wgrid.Grid {
	return rank(data, obs, func(x, o float64) bool { return o <= x })
}

func rank(data *wgrid.Grid, obs *Stack, counts func(x, o float64) bool) *wgrid.Grid {
	out := wgrid.New(obs.Rows, obs.Cols)
	for r := 0; r < obs.Rows; r++ {
		for c := 0; c < obs.Cols; c++ {
			x := data.At(r, c)
			if wgrid.Missing(x) {
				out.Set(r, c, math.NaN())
				continue
			}
			n := 1
			for _, o := range obs.Slice(r, c) {
				if wgrid.Missing(o) {
					continue
				}
				if counts(x, o) {
					n++
				}
			}
			out.Set(r, c, float64(n))
		}
	}
	return out
}
