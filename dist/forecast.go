package dist

import wgrid "github.com/isciences/wsim/grid"

// ForecastCorrect bias-corrects a forecast grid using retrospective and
// observed distribution parameters (SPEC_FULL.md §4.C):
//
//  1. A NaN data cell yields NaN.
//  2. If all three retro parameters are NaN, whenUndefined is used as the
//     quantile; otherwise q = CDF_retro(data).
//  3. q is clamped to [1/extremeCutoff, 1 - 1/extremeCutoff].
//  4. If the obs scale or shape is NaN, the output is obs location;
//     otherwise the output is Quantile_obs(q).
func ForecastCorrect(k Kind, threshold float64, data *wgrid.Grid, obs, retro ParameterGrids, extremeCutoff, whenUndefined float64) (*wgrid.Grid, error) {
	if !wgrid.SameShape(data, obs.Location) || !wgrid.SameShape(data, retro.Location) {
		return nil, errShapeMismatch("dist.ForecastCorrect")
	}

	d := For(k, threshold)
	minQ := 1 / extremeCutoff
	maxQ := 1 - minQ

	out := wgrid.New(data.Rows, data.Cols)
	for r := 0; r < data.Rows; r++ {
		for c := 0; c < data.Cols; c++ {
			x := data.At(r, c)
			if wgrid.Missing(x) {
				out.Set(r, c, x)
				continue
			}

			rLoc, rScale, rShape := retro.Location.At(r, c), retro.Scale.At(r, c), retro.Shape.At(r, c)

			var q float64
			if wgrid.Missing(rLoc) && wgrid.Missing(rScale) && wgrid.Missing(rShape) {
				q = whenUndefined
			} else {
				q = d.CDF(x, rLoc, rScale, rShape)
			}
			q = clamp(q, minQ, maxQ)

			oLoc, oScale, oShape := obs.Location.At(r, c), obs.Scale.At(r, c), obs.Shape.At(r, c)
			if wgrid.Missing(oScale) || wgrid.Missing(oShape) {
				out.Set(r, c, oLoc)
				continue
			}
			out.Set(r, c, d.Quantile(q, oLoc, oScale, oShape))
		}
	}
	return out, nil
}
