package dist

import (
	"fmt"

	wgrid "github.com/isciences/wsim/grid"
)

// ParameterGrids holds the per-cell (location, scale, shape) parameters of
// a distribution (SPEC_FULL.md §3). A missing parameter at a cell marks
// the distribution as undefined there.
type ParameterGrids struct {
	Location, Scale, Shape *wgrid.Grid
}

func pick(g *wgrid.Grid, r, c int) float64 {
	if g.Rows == 1 && g.Cols == 1 {
		return g.At(0, 0)
	}
	return g.At(r, c)
}

// CDFGrid applies dist's CDF elementwise over data, using per-cell
// parameters from params. Any of data or params' grids may be a 1x1
// scalar, broadcast across the other operand's shape.
func CDFGrid(k Kind, threshold float64, data *wgrid.Grid, params ParameterGrids) (*wgrid.Grid, error) {
	d := For(k, threshold)
	rows, cols, err := shapeOf(data, params)
	if err != nil {
		return nil, err
	}
	out := wgrid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := pick(data, r, c)
			loc := pick(params.Location, r, c)
			scale := pick(params.Scale, r, c)
			shape := pick(params.Shape, r, c)
			out.Set(r, c, d.CDF(x, loc, scale, shape))
		}
	}
	return out, nil
}

// QuaGrid applies dist's Quantile elementwise over f, using per-cell
// parameters from params, with the same broadcasting rules as CDFGrid.
func QuaGrid(k Kind, threshold float64, f *wgrid.Grid, params ParameterGrids) (*wgrid.Grid, error) {
	d := For(k, threshold)
	rows, cols, err := shapeOf(f, params)
	if err != nil {
		return nil, err
	}
	out := wgrid.New(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := pick(f, r, c)
			loc := pick(params.Location, r, c)
			scale := pick(params.Scale, r, c)
			shape := pick(params.Shape, r, c)
			out.Set(r, c, d.Quantile(p, loc, scale, shape))
		}
	}
	return out, nil
}

// shapeOf determines the broadcast output shape among data and the three
// parameter grids, all of which may individually be scalars.
func shapeOf(data *wgrid.Grid, params ParameterGrids) (rows, cols int, err error) {
	candidates := []*wgrid.Grid{data, params.Location, params.Scale, params.Shape}
	rows, cols = 0, 0
	for _, g := range candidates {
		if g.Rows == 1 && g.Cols == 1 {
			continue
		}
		if rows == 0 {
			rows, cols = g.Rows, g.Cols
			continue
		}
		if g.Rows != rows || g.Cols != cols {
			return 0, 0, fmt.Errorf("dist: incompatible shapes in broadcast set")
		}
	}
	if rows == 0 {
		rows, cols = 1, 1
	}
	return rows, cols, nil
}
