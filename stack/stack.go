// Package stack implements the 3-D array slice-wise reductions of
// SPEC_FULL.md §4.D. Each (row, col) cell owns a length-Depth vector,
// interpreted as a time series or ensemble; NaN marks a missing sample.
// The hot "for each (i,j), gather slice, reduce" pattern lives in one
// generic apply helper below, generic over the result type; the reduction
// itself is passed as a function value and called once per cell.
package stack

import (
	"math"

	wgrid "github.com/isciences/wsim/grid"
)

// Stack is a (Rows, Cols, Depth) array of doubles, backed by a flat slice
// in which each cell's depth vector is contiguous (SPEC_FULL.md §3).
type Stack struct {
	Rows, Cols, Depth int
	Data              []float64
}

// New allocates a Rows x Cols x Depth stack, every cell initialized to NaN.
func New(rows, cols, depth int) *Stack {
	d := make([]float64, rows*cols*depth)
	for i := range d {
		d[i] = math.NaN()
	}
	return &Stack{Rows: rows, Cols: cols, Depth: depth, Data: d}
}

// NewFrom wraps an existing slice, laid out with each cell's depth vector
// contiguous: Data[(r*Cols+c)*Depth : (r*Cols+c)*Depth+Depth].
func NewFrom(rows, cols, depth int, data []float64) *Stack {
	if len(data) != rows*cols*depth {
		panic("stack.NewFrom: data length does not match rows*cols*depth")
	}
	return &Stack{Rows: rows, Cols: cols, Depth: depth, Data: data}
}

// Slice returns the length-Depth vector at (row, col). The returned slice
// aliases the Stack's backing array.
func (s *Stack) Slice(row, col int) []float64 {
	off := (row*s.Cols + col) * s.Depth
	return s.Data[off : off+s.Depth]
}

// SetSlice overwrites the vector at (row, col); v must have length Depth.
func (s *Stack) SetSlice(row, col int, v []float64) {
	copy(s.Slice(row, col), v)
}

// apply runs reduce over every cell's depth vector, returning a
// Rows*Cols slice of results in row-major order. reduce receives its own
// scratch copy — it may sort or otherwise mutate it freely.
func apply[T any](s *Stack, reduce func(vals []float64) T) []T {
	out := make([]T, s.Rows*s.Cols)
	scratch := make([]float64, s.Depth)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			copy(scratch, s.Slice(r, c))
			out[r*s.Cols+c] = reduce(scratch)
		}
	}
	return out
}

// applyGrid is apply specialized to a float64-valued reduction, packaging
// the result as a *grid.Grid.
func applyGrid(s *Stack, reduce func(vals []float64) float64) *wgrid.Grid {
	vals := apply(s, reduce)
	return wgrid.NewFrom(s.Rows, s.Cols, vals)
}

// definedValues returns the defined (non-NaN) prefix of vals, compacted
// in place; the returned slice aliases vals's backing array.
func definedValues(vals []float64) []float64 {
	n := 0
	for _, v := range vals {
		if !wgrid.Missing(v) {
			vals[n] = v
			n++
		}
	}
	return vals[:n]
}
