package hru

import "github.com/isciences/wsim/grid"

// Domain is a rectangular collection of cells sharing a grid shape, one
// Cell per pixel, following the teacher's convention of a slice-backed
// domain type alongside its per-cell struct (struct.structure.go).
type Domain struct {
	Rows, Cols int
	Cells      []Cell
}

// NewDomain allocates a Domain of Rows x Cols cells with the given
// per-cell parameters, one entry per cell in row-major order.
func NewDomain(rows, cols int, params []Params) *Domain {
	if len(params) != rows*cols {
		panic("hru.NewDomain: params length does not match rows*cols")
	}
	cells := make([]Cell, rows*cols)
	for i, p := range params {
		cells[i].Params = p
	}
	return &Domain{Rows: rows, Cols: cols, Cells: cells}
}

// AdvanceGrid runs one monthly timestep for every cell in the domain,
// mutating each cell's State in place and returning the batch of derived
// monthly quantities as grids (SPEC_FULL.md §4.E).
func (d *Domain) AdvanceGrid(precip, temp, pet *grid.Grid, nDays int, pWetDays *grid.Grid) (runoff, evapotranspiration, soilMoistureAve *grid.Grid) {
	runoff = grid.New(d.Rows, d.Cols)
	evapotranspiration = grid.New(d.Rows, d.Cols)
	soilMoistureAve = grid.New(d.Rows, d.Cols)

	for r := 0; r < d.Rows; r++ {
		for c := 0; c < d.Cols; c++ {
			idx := r*d.Cols + c
			p, t, e0, pw := precip.At(r, c), temp.At(r, c), pet.At(r, c), pWetDays.At(r, c)
			if grid.Missing(p) || grid.Missing(t) || grid.Missing(e0) || grid.Missing(pw) {
				continue
			}
			res := d.Cells[idx].Advance(p, t, e0, nDays, pw)
			runoff.Set(r, c, res.Runoff)
			evapotranspiration.Set(r, c, res.Evapotranspiration)
			soilMoistureAve.Set(r, c, res.SoilMoistureAve)
		}
	}
	return runoff, evapotranspiration, soilMoistureAve
}
