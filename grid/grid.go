// Package grid implements the Grid entity (SPEC_FULL.md §3, §4.A):
// aggregate/disaggregate operations and reclassification helpers over
// rectangular arrays of doubles, with NaN as the missing sentinel. The
// layout is adapted from the teacher's grid package (grid/grid.go), which
// carries shape (Nrows, Ncols) alongside a flat backing array; here the
// backing array is exported as Data in row-major order rather than parsed
// from a legacy binary grid-definition file, since raster I/O is out of
// scope (SPEC_FULL.md §1).
package grid

import (
	"fmt"
	"math"
)

// Grid is a 2-D array of doubles with shape (Rows, Cols), backed by a
// flat, row-major slice. The zero value is not useful; construct with New.
type Grid struct {
	Rows, Cols int
	Data       []float64
}

// New allocates a Rows x Cols grid, every cell initialized to NaN (missing).
func New(rows, cols int) *Grid {
	d := make([]float64, rows*cols)
	for i := range d {
		d[i] = math.NaN()
	}
	return &Grid{Rows: rows, Cols: cols, Data: d}
}

// NewFrom wraps an existing row-major slice without copying. Panics if the
// slice length does not match rows*cols.
func NewFrom(rows, cols int, data []float64) *Grid {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("grid.NewFrom: expected %d values, got %d", rows*cols, len(data)))
	}
	return &Grid{Rows: rows, Cols: cols, Data: data}
}

// At returns the value at (row, col).
func (g *Grid) At(row, col int) float64 {
	return g.Data[row*g.Cols+col]
}

// Set assigns the value at (row, col).
func (g *Grid) Set(row, col int, v float64) {
	g.Data[row*g.Cols+col] = v
}

// Missing reports whether v is the missing sentinel (NaN).
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// SameShape reports whether two grids share Rows and Cols.
func SameShape(a, b *Grid) bool {
	return a.Rows == b.Rows && a.Cols == b.Cols
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	d := make([]float64, len(g.Data))
	copy(d, g.Data)
	return &Grid{Rows: g.Rows, Cols: g.Cols, Data: d}
}

// IntGrid is the integer-valued analogue of Grid, used for D8 flow
// direction codes (SPEC_FULL.md §3). math.MinInt32 is the missing
// sentinel, matching the "distinguished integer-minimum sentinel" called
// for in spec.md §6, since Go integers have no native NA representation.
type IntGrid struct {
	Rows, Cols int
	Data       []int32
}

// MissingInt is the sentinel value for missing IntGrid cells.
const MissingInt int32 = math.MinInt32

// NewInt allocates a Rows x Cols integer grid, every cell set to MissingInt.
func NewInt(rows, cols int) *IntGrid {
	d := make([]int32, rows*cols)
	for i := range d {
		d[i] = MissingInt
	}
	return &IntGrid{Rows: rows, Cols: cols, Data: d}
}

// NewIntFrom wraps an existing row-major slice without copying.
func NewIntFrom(rows, cols int, data []int32) *IntGrid {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("grid.NewIntFrom: expected %d values, got %d", rows*cols, len(data)))
	}
	return &IntGrid{Rows: rows, Cols: cols, Data: data}
}

// At returns the value at (row, col).
func (g *IntGrid) At(row, col int) int32 {
	return g.Data[row*g.Cols+col]
}

// Set assigns the value at (row, col).
func (g *IntGrid) Set(row, col int, v int32) {
	g.Data[row*g.Cols+col] = v
}

// MissingInt32 reports whether v is the IntGrid missing sentinel.
func MissingInt32(v int32) bool {
	return v == MissingInt
}
