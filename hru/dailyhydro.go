package hru

import "math"

// dailyHydro disaggregates a monthly (or other multi-day) timestep into
// daily precipitation and snowmelt, and integrates the daily water
// balance across it, following hydro_daily.cpp's daily_hydro_impl. It
// returns the change in soil moisture, the timestep-average soil
// moisture, evapotranspiration, and runoff, each totaled (or averaged,
// for soil moisture) over the timestep.
func dailyHydro(p, sa, sm, e0 float64, ws, wc float64, nDays int, pWetDays float64) (dWdt, wsAve, e, r float64) {
	petDaily := e0 / float64(nDays)

	if math.IsNaN(sa) {
		sa = 0
	}
	if math.IsNaN(sm) {
		sm = 0
	}

	rainDaily := dailyPrecip(p-sa, nDays, pWetDays)
	snowmeltDaily := dailyPrecip(sm, nDays, 1.0)

	wsSum := 0.0
	for i := 0; i < nDays; i++ {
		pDaily := rainDaily[i] + snowmeltDaily[i]

		dwdtDaily := soilMoistureChange(pDaily, petDaily, ws, wc)
		ws += dwdtDaily
		wsSum += ws
		dWdt += dwdtDaily

		eDaily := evapotranspiration(pDaily, petDaily, dwdtDaily)
		e += eDaily

		r += dailyRunoff(pDaily, eDaily, dwdtDaily)
	}

	wsAve = wsSum / float64(nDays)
	return dWdt, wsAve, e, r
}
