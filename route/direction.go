// Package route implements D8 flow-direction accumulation (SPEC_FULL.md
// §4.G), adapted from the teacher's tem package (tem/tec.go, tem/tem.go,
// tem/constructor.go), which built its own upslope adjacency from a flow
// grid; the traversal and coarse/fine disaggregation logic here follows
// original_source/wsim.lsm/src/accum.cpp directly.
package route

import "github.com/isciences/wsim/grid"

// Direction is a D8 outward flow-direction code.
type Direction = int32

// Outward flow-direction codes, matching accum.cpp.
const (
	OutEast      Direction = 1
	OutSoutheast Direction = 2
	OutSouth     Direction = 4
	OutSouthwest Direction = 8
	OutWest      Direction = 16
	OutNorthwest Direction = 32
	OutNorth     Direction = 64
	OutNortheast Direction = 128
)

// downstream is the resolved target cell for one outward flow step.
type downstream struct {
	row, col int
	flows    bool
}

func (d *downstream) moveEast(nCols int, wrapX bool) {
	if d.col == nCols-1 {
		d.col = 0
		d.flows = d.flows && wrapX
	} else {
		d.col++
	}
}

func (d *downstream) moveWest(nCols int, wrapX bool) {
	if d.col == 0 {
		d.col = nCols - 1
		d.flows = d.flows && wrapX
	} else {
		d.col--
	}
}

func (d *downstream) moveNorth(nCols int, wrapY bool) {
	if d.row == 0 {
		d.col = nCols - d.col - 1
		d.flows = d.flows && wrapY
	} else {
		d.row--
	}
}

func (d *downstream) moveSouth(nRows, nCols int, wrapY bool) {
	if d.row == nRows-1 {
		d.col = nCols - d.col - 1
		d.flows = d.flows && wrapY
	} else {
		d.row++
	}
}

// flow resolves the cell that (i,j) drains into. A cell whose direction
// is missing, zero, or otherwise unrecognized is a sink: flows is false.
// Any off-grid exit whose matching wrap flag is unset is likewise a sink
// (SPEC_FULL.md §9, open question 2).
func flow(dirs *grid.IntGrid, i, j int, wrapX, wrapY bool) downstream {
	ds := downstream{row: i, col: j, flows: true}
	nRows, nCols := dirs.Rows, dirs.Cols

	switch dirs.At(i, j) {
	case OutNorth:
		ds.moveNorth(nCols, wrapY)
	case OutNortheast:
		ds.moveNorth(nCols, wrapY)
		ds.moveEast(nCols, wrapX)
	case OutEast:
		ds.moveEast(nCols, wrapX)
	case OutSoutheast:
		ds.moveSouth(nRows, nCols, wrapY)
		ds.moveEast(nCols, wrapX)
	case OutSouth:
		ds.moveSouth(nRows, nCols, wrapY)
	case OutSouthwest:
		ds.moveSouth(nRows, nCols, wrapY)
		ds.moveWest(nCols, wrapX)
	case OutWest:
		ds.moveWest(nCols, wrapX)
	case OutNorthwest:
		ds.moveNorth(nCols, wrapY)
		ds.moveWest(nCols, wrapX)
	default:
		ds.flows = false
	}

	return ds
}
