package hru

import (
	"math"

	"github.com/isciences/wsim/grid"
)

// DetentionState carries the detained-runoff volumes between timesteps
// (SPEC_FULL.md §4.F): Dr for rainfall-derived runoff, Ds for
// snowmelt-derived runoff.
type DetentionState struct {
	Dr float64
	Ds float64
}

// DetentionResult is the output of one Detain call.
type DetentionResult struct {
	Rp float64 // revised runoff due to rainfall
	Rs float64 // revised runoff due to snowmelt
}

// snowpackReleaseFraction returns the fraction of detained snowmelt
// runoff released this timestep, following runoff_detained.cpp's
// runoff_detained_snowpack_cpp, which differs by elevation band.
func snowpackReleaseFraction(meltMonth int32, elevation float64) float64 {
	if elevation < 500 {
		switch {
		case meltMonth == 1:
			return 0.1
		case meltMonth > 1:
			return 0.5
		default:
			return 0
		}
	}
	switch {
	case meltMonth == 1:
		return 0.1
	case meltMonth == 2:
		return 0.25
	case meltMonth > 2:
		return 0.5
	default:
		return 0
	}
}

// Detain partitions total runoff r between the fraction that is released
// this timestep (Rp, Rs) and the fraction retained in detention (updating
// state in place), following runoff_detained.cpp's calc_detained. pr is
// precipitation, p is net precipitation (Pr - Sa + Sm), sm is snowmelt,
// z is elevation, meltMonth the consecutive-melting-months counter, and
// beta/gamma are the release/bypass fractions from wsimcfg.Config.
func Detain(state *DetentionState, r, pr, p, sm, z float64, meltMonth int32, beta, gamma float64) DetentionResult {
	if grid.MissingInt32(meltMonth) || grid.Missing(z) {
		return DetentionResult{Rp: math.NaN(), Rs: math.NaN()}
	}

	xr, xs := 0.0, 0.0
	if p != 0 {
		xr = r * pr / p
		xs = r * sm / p
		if math.IsNaN(xr) {
			xr = 0
		}
		if math.IsNaN(xs) {
			xs = 0
		}
	}

	rp := gamma*xr + beta*state.Dr
	f := snowpackReleaseFraction(meltMonth, z)
	rs := f * (state.Ds + xs)

	dDsdt := xs - rs
	dDrdt := (1-gamma)*xr - beta*state.Dr

	state.Ds += dDsdt
	state.Dr += dDrdt

	return DetentionResult{Rp: rp, Rs: rs}
}
