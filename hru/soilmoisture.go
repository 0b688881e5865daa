package hru

import "math"

// soilDryingAlpha is the shape parameter of the unitless drying function,
// following soil_moisture_change.cpp.
const soilDryingAlpha = 5.0

var g1Denom = math.Expm1(-soilDryingAlpha)

// g1 is the soil-moisture-fraction component of the drying function.
func g1(ws, wc float64) float64 {
	return math.Expm1(-soilDryingAlpha*ws/wc) / g1Denom
}

// g2 is the evapotranspiration-demand component of the drying function.
func g2(ws, e0, p float64) float64 {
	if e0 < ws {
		return e0 - p
	}
	beta := e0 / ws
	return ws * math.Expm1((p-e0)/ws) / math.Expm1(-beta)
}

// dryingRate is the drying function g(Ws, Wc, E0, P), the product of the
// unitless g1 and g2: the magnitude of decline in soil moisture, in
// millimeters per day.
func dryingRate(ws, wc, e0, p float64) float64 {
	return g1(ws, wc) * g2(ws, e0, p)
}

// soilMoistureChange returns the change in soil moisture, in millimeters,
// for one day given effective precipitation p, potential
// evapotranspiration e0, current soil moisture ws and holding capacity
// wc. Values are not clamped to non-negative (SPEC_FULL.md §9 Open
// Question resolution).
func soilMoistureChange(p, e0, ws, wc float64) float64 {
	deficit := (wc - ws) + e0

	switch {
	case p <= e0:
		dwdt := -dryingRate(ws, wc, e0, p)
		return math.Max(dwdt, -0.9*ws)
	case p <= deficit:
		return p - e0
	default:
		return wc - ws
	}
}

// evapotranspiration returns the actual evapotranspiration for one day
// given daily precipitation p, potential evapotranspiration e0, and the
// day's soil moisture change dwdt.
func evapotranspiration(p, e0, dwdt float64) float64 {
	if p <= e0 {
		return p - dwdt
	}
	return e0
}

// dailyRunoff returns runoff via the Thornthwaite water balance equation.
func dailyRunoff(p, e, dwdt float64) float64 {
	return p - e - dwdt
}
