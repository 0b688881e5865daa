package dist

import "math"

// gevDist implements the Generalized Extreme Value distribution
// (SPEC_FULL.md §4.C), transcribed from
// original_source/wsim.distributions/src/stat_functions.cpp's
// qua<gev_tag>/cdf<gev_tag> specializations.
type gevDist struct{}

// Quantile returns loc + scale/shape*(1 - (-ln f)^shape), reducing to
// loc - scale*ln(-ln f) at shape == 0.
func (gevDist) Quantile(f, loc, scale, shape float64) float64 {
	if isNaN(f) {
		return f
	}
	if shape == 0 {
		return loc - scale*math.Log(-math.Log(f))
	}
	return loc + scale/shape*(1-math.Pow(-math.Log(f), shape))
}

// CDF returns exp(-exp(-y)), where y = (x-loc)/scale is re-expressed via
// the shape parameter when shape != 0.
func (gevDist) CDF(x, loc, scale, shape float64) float64 {
	if isNaN(x) {
		return x
	}
	y := (x - loc) / scale
	if shape != 0 {
		y = -1 / shape * math.Log(math.Max(0, 1-shape*y))
	}
	return math.Exp(-math.Exp(-y))
}
