package stack

import (
	"math"
	"sort"

	wgrid "github.com/isciences/wsim/grid"
)

// quantileType7 computes the Type-7 linear-interpolation sample quantile
// of the already-sorted slice sorted (SPEC_FULL.md §4.D), matching
// original_source/wsim.distributions/src/integration_stats.cpp's
// `quantile` helper.
func quantileType7(sorted []float64, q float64) float64 {
	n := len(sorted)
	if q < 0 || q > 1 {
		return math.NaN()
	}
	if n == 0 {
		return math.NaN()
	}
	if q == 1 {
		return sorted[n-1]
	}
	pos := q * float64(n-1)
	j := int(pos)
	f := pos - float64(j)
	if j+1 >= n {
		return sorted[n-1]
	}
	return (1-f)*sorted[j] + f*sorted[j+1]
}

// Quantile returns, for each (row, col), the Type-7 sample quantile q of
// the defined values, or NaN if q is outside [0,1] or no values are
// defined.
func Quantile(s *Stack, q float64) *wgrid.Grid {
	return applyGrid(s, func(v []float64) float64 {
		d := definedValues(v)
		sort.Float64s(d)
		return quantileType7(d, q)
	})
}

// Median returns, for each (row, col), the Type-7 median of the defined
// values.
func Median(s *Stack) *wgrid.Grid {
	return Quantile(s, 0.5)
}

// Sort returns a new Stack in which each cell's depth vector holds its
// defined values sorted ascending, followed by trailing NaNs.
func Sort(s *Stack) *Stack {
	out := New(s.Rows, s.Cols, s.Depth)
	for r := 0; r < s.Rows; r++ {
		for c := 0; c < s.Cols; c++ {
			v := make([]float64, s.Depth)
			copy(v, s.Slice(r, c))
			d := definedValues(v)
			sort.Float64s(d)
			dst := out.Slice(r, c)
			copy(dst, d)
			for i := len(d); i < s.Depth; i++ {
				dst[i] = math.NaN()
			}
		}
	}
	return out
}

// WeightedQuantile computes the weighted Type-7 quantile q of the defined
// values in vals, weighted by the aligned entries in weights
// (SPEC_FULL.md §4.D). Weights must be non-negative and defined for every
// value considered; an undefined or negative weight, or considered
// weights that sum to zero, returns an error. If no values are defined
// the result is NaN with a nil error. WeightedQuantileGrid below applies
// it to every (row, col) of two stacks.
func WeightedQuantile(vals, weights []float64, q float64) (float64, error) {
	type pair struct{ v, w float64 }
	pairs := make([]pair, 0, len(vals))
	for i, v := range vals {
		if wgrid.Missing(v) {
			continue
		}
		w := weights[i]
		if wgrid.Missing(w) {
			return 0, errWeightUndefined
		}
		if w < 0 {
			return 0, errWeightNegative
		}
		pairs = append(pairs, pair{v, w})
	}
	n := len(pairs)
	if n == 0 {
		return math.NaN(), nil
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].v < pairs[j].v })

	totalW := 0.0
	for _, p := range pairs {
		totalW += p.w
	}
	if totalW == 0 {
		return 0, errAllWeightsZero
	}

	sn := float64(n-1) * totalW
	target := q * sn

	// S_i = i*w_i + (n-1)*sum_{j<i} w_j, per SPEC_FULL.md §4.D.
	cumBefore := 0.0
	sVals := make([]float64, n)
	for i, p := range pairs {
		sVals[i] = float64(i)*p.w + float64(n-1)*cumBefore
		cumBefore += p.w
	}

	if target <= sVals[0] {
		return pairs[0].v, nil
	}
	for i := 0; i < n-1; i++ {
		if sVals[i] <= target && target < sVals[i+1] {
			frac := (target - sVals[i]) / (sVals[i+1] - sVals[i])
			return pairs[i].v + frac*(pairs[i+1].v-pairs[i].v), nil
		}
	}
	return pairs[n-1].v, nil
}

// WeightedQuantileGrid applies WeightedQuantile at every (row, col) of two
// aligned stacks, values and weights, which must share the same shape.
func WeightedQuantileGrid(values, weights *Stack, q float64) (*wgrid.Grid, error) {
	if values.Rows != weights.Rows || values.Cols != weights.Cols || values.Depth != weights.Depth {
		return nil, errShapeMismatch
	}
	out := wgrid.New(values.Rows, values.Cols)
	for r := 0; r < values.Rows; r++ {
		for c := 0; c < values.Cols; c++ {
			v, err := WeightedQuantile(values.Slice(r, c), weights.Slice(r, c), q)
			if err != nil {
				return nil, err
			}
			out.Set(r, c, v)
		}
	}
	return out, nil
}
