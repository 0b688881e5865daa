package route

import (
	"fmt"
	"math"

	"github.com/isciences/wsim/grid"
	"github.com/isciences/wsim/wsimcfg"
)

// InwardDirections returns, for each cell, the summed direction codes of
// every adjacent cell that flows into it; zero marks a cell that nothing
// flows into (a headwater).
func InwardDirections(dirs *grid.IntGrid, wrapX, wrapY bool) *grid.IntGrid {
	in := grid.NewInt(dirs.Rows, dirs.Cols)
	for i := range in.Data {
		in.Data[i] = 0
	}

	for j := 0; j < dirs.Cols; j++ {
		for i := 0; i < dirs.Rows; i++ {
			ds := flow(dirs, i, j, wrapX, wrapY)
			if ds.flows {
				in.Set(ds.row, ds.col, in.At(ds.row, ds.col)+dirs.At(i, j))
			}
		}
	}
	return in
}

// DisaggregateAmount divides each cell's value evenly among factor x
// factor subcells.
func DisaggregateAmount(m *grid.Grid, factor int) *grid.Grid {
	out := grid.New(m.Rows*factor, m.Cols*factor)
	area := float64(factor * factor)
	for j := 0; j < m.Cols; j++ {
		for i := 0; i < m.Rows; i++ {
			v := m.At(i, j) / area
			for p := 0; p < factor; p++ {
				for q := 0; q < factor; q++ {
					out.Set(i*factor+p, j*factor+q, v)
				}
			}
		}
	}
	return out
}

// AggregateFlows collapses a fine-resolution flow grid back to the
// coarse resolution implied by factor, skipping flows that resolve to
// another subcell of the same coarse cell to avoid double-counting.
func AggregateFlows(flows *grid.Grid, dirs *grid.IntGrid, factor int, wrapX, wrapY bool) *grid.Grid {
	if factor == 1 {
		return flows
	}

	out := grid.New(flows.Rows/factor, flows.Cols/factor)

	for j := 0; j < flows.Cols; j++ {
		for i := 0; i < flows.Rows; i++ {
			v := flows.At(i, j)
			if grid.Missing(v) {
				continue
			}

			ds := flow(dirs, i, j, wrapX, wrapY)
			if ds.flows && ds.row/factor == i/factor && ds.col/factor == j/factor {
				continue
			}

			oi, oj := i/factor, j/factor
			cur := out.At(oi, oj)
			if grid.Missing(cur) {
				out.Set(oi, oj, v)
			} else {
				out.Set(oi, oj, cur+v)
			}
		}
	}
	return out
}

// AccumulateFlow routes weights (one value per coarse cell) downstream
// through the fine-resolution flow-direction grid dirs, disaggregating
// weights to the fine resolution, propagating flow with a Kahn-style
// topological walk bounded by cfg.FlowAccumIterationCap, and
// re-aggregating to the coarse resolution (SPEC_FULL.md §4.G),
// following accum.cpp's accumulate_flow.
func AccumulateFlow(dirs *grid.IntGrid, weights *grid.Grid, wrapX, wrapY bool, cfg wsimcfg.Config) (*grid.Grid, error) {
	if dirs.Rows%weights.Rows != 0 || dirs.Cols%weights.Cols != 0 {
		return nil, fmt.Errorf("route: direction grid dimensions must be an integer multiple of the weight grid dimensions")
	}
	factor := dirs.Rows / weights.Rows
	if dirs.Cols/weights.Cols != factor {
		return nil, fmt.Errorf("route: inconsistent disaggregation factor between rows and columns")
	}

	inDirs := InwardDirections(dirs, wrapX, wrapY)
	flows := DisaggregateAmount(weights, factor)

	type cell struct{ row, col int }
	var upstream []cell
	for j := 0; j < inDirs.Cols; j++ {
		for i := 0; i < inDirs.Rows; i++ {
			if inDirs.At(i, j) == 0 {
				upstream = append(upstream, cell{i, j})
			}
		}
	}

	iteration := 0
	for len(upstream) > 0 {
		iteration++
		if iteration >= cfg.FlowAccumIterationCap {
			return nil, fmt.Errorf("route: flow accumulation did not converge after %d iterations; flow-direction grid may contain a cycle", iteration)
		}

		var next []cell
		for _, px := range upstream {
			ds := flow(dirs, px.row, px.col, wrapX, wrapY)
			weight := flows.At(px.row, px.col)
			if !ds.flows {
				continue
			}
			if grid.Missing(weight) {
				weight = 0
			}

			cur := flows.At(ds.row, ds.col)
			if grid.Missing(cur) {
				flows.Set(ds.row, ds.col, weight)
			} else {
				flows.Set(ds.row, ds.col, cur+weight)
			}

			remaining := inDirs.At(ds.row, ds.col) - dirs.At(px.row, px.col)
			inDirs.Set(ds.row, ds.col, remaining)
			if remaining == 0 {
				next = append(next, cell{ds.row, ds.col})
			}
		}
		upstream = next
	}

	for j := 0; j < flows.Cols; j++ {
		for i := 0; i < flows.Rows; i++ {
			if grid.MissingInt32(dirs.At(i, j)) {
				flows.Set(i, j, math.NaN())
			}
		}
	}

	return AggregateFlows(flows, dirs, factor, wrapX, wrapY), nil
}
