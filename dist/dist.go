// Package dist implements the GEV and Pearson Type-III quantile/CDF
// kernels (SPEC_FULL.md §4.C), sharing one inner loop across distributions
// via the tagged-variant pattern SPEC_FULL.md §9 calls for. The
// regularized incomplete gamma function and the normal CDF/quantile are
// delegated to gonum.org/v1/gonum/stat/distuv, the "trusted
// special-functions library" spec.md's §4.C explicitly permits and which
// the retrieval pack's zalf-rpm-soybean-EU repo already depends on
// (gonum.org/v1/gonum/stat).
package dist

import "math"

// Kind selects a distribution family for the grid-level and
// forecast-correction entry points.
type Kind int

const (
	GEV Kind = iota
	PE3
)

// Distribution is implemented by each supported family, sharing the
// per-cell apply loop in grid.go and forecast.go.
type Distribution interface {
	CDF(x, loc, scale, shape float64) float64
	Quantile(f, loc, scale, shape float64) float64
}

// For selects the Distribution implementation for k, using threshold as
// the degenerate-shape cutoff for PE3 (SPEC_FULL.md §9, open question 3).
func For(k Kind, threshold float64) Distribution {
	switch k {
	case GEV:
		return gevDist{}
	case PE3:
		return pe3Dist{shapeThreshold: threshold}
	default:
		return nil
	}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func isNaN(v float64) bool { return math.IsNaN(v) }
