// Package hru implements the per-cell monthly soil/snow water balance of
// SPEC_FULL.md §4.E, adapted from the teacher's hru package (hru/hru.go,
// hru/res.go), whose params/state split and per-cell Advance-style update
// loop this package generalizes to the Thornthwaite-style balance
// transcribed from original_source/wsim.lsm/src/{snow_accum,snow_melt,
// soil_moisture_change,precip_daily,hydro_daily}.cpp.
package hru

import (
	"math"

	"github.com/isciences/wsim/grid"
)

// Params holds the time-invariant physical properties of a cell.
type Params struct {
	// Wc is the soil moisture holding capacity, in millimeters.
	Wc float64
	// Elevation is the cell elevation, in meters.
	Elevation float64
}

// State holds the carried-forward state of a cell between timesteps.
type State struct {
	// Ws is soil moisture at the start of the timestep, in millimeters.
	Ws float64
	// Snowpack is the accumulated, unmelted snow, in millimeters.
	Snowpack float64
	// MeltMonth counts consecutive months of melting conditions;
	// grid.MissingInt marks a cell for which this history is undefined.
	MeltMonth int32
}

// Result is the set of derived monthly hydrological quantities produced
// by a single Advance call.
type Result struct {
	SnowAccum          float64 // Sa
	SnowMelt           float64 // Sm
	DWdt               float64 // change in soil moisture
	SoilMoistureAve    float64 // Ws_ave
	Evapotranspiration float64 // E
	Runoff             float64 // R
}

// Cell couples a cell's fixed parameters with its evolving state.
type Cell struct {
	Params Params
	State  State
}

// SnowAccumulation returns the snow accumulation for a timestep, per
// snow_accum.cpp: all precipitation is snow at or below -1C, none above.
func SnowAccumulation(precip, temp float64) float64 {
	if grid.Missing(temp) {
		return 0
	}
	if temp <= -1 {
		return precip
	}
	return 0
}

// SnowMelt returns the snowmelt for a timestep, per snow_melt.cpp. It
// propagates missing values from meltMonth and elevation.
func SnowMelt(snowpack float64, meltMonth int32, temp, elevation float64) float64 {
	if grid.MissingInt32(meltMonth) || grid.Missing(elevation) {
		return math.NaN()
	}
	if temp >= -1 {
		if elevation > 500 && meltMonth == 1 {
			return 0.5 * snowpack
		}
		return snowpack
	}
	return 0
}

// nextMeltMonth advances the consecutive-melting-months counter given
// whether melting conditions (T >= -1) held this timestep.
func nextMeltMonth(prev int32, melting bool) int32 {
	if !melting {
		return 0
	}
	if grid.MissingInt32(prev) || prev < 0 {
		return 1
	}
	return prev + 1
}

// Advance runs one monthly timestep of the water balance for the cell,
// mutating its State and returning the derived monthly quantities.
// precip, pet are totals over the timestep (mm); temp is the average
// daily temperature (C); nDays is the number of days in the timestep;
// pWetDays is the fraction of days with measurable precipitation.
func (c *Cell) Advance(precip, temp, pet float64, nDays int, pWetDays float64) Result {
	sa := SnowAccumulation(precip, temp)
	sm := SnowMelt(c.State.Snowpack, c.State.MeltMonth, temp, c.Params.Elevation)

	if !grid.Missing(sm) {
		c.State.Snowpack = c.State.Snowpack + sa - sm
	} else {
		c.State.Snowpack += sa
	}

	c.State.MeltMonth = nextMeltMonth(c.State.MeltMonth, temp >= -1)

	dWdt, wsAve, e, r := dailyHydro(precip, sa, sm, pet, c.State.Ws, c.Params.Wc, nDays, pWetDays)
	c.State.Ws += dWdt

	return Result{
		SnowAccum:          sa,
		SnowMelt:           sm,
		DWdt:               dWdt,
		SoilMoistureAve:    wsAve,
		Evapotranspiration: e,
		Runoff:             r,
	}
}
