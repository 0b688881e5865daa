package hru

import "math"

// wetDayList returns the 1-based indices of days on which precipitation
// falls, given nDays days in the timestep and a fraction pWetDays of wet
// days, following precip_daily.cpp's make_wet_day_list.
func wetDayList(nDays int, pWetDays float64) []int {
	wetDays := int(math.Round(float64(nDays) * pWetDays))
	if wetDays == nDays {
		days := make([]int, nDays)
		for i := range days {
			days[i] = i + 1
		}
		return days
	}

	interval := float64(nDays) / (float64(wetDays) + 1.0)
	day := 1 + float64(int(interval/2))

	var days []int
	for day <= float64(nDays)-interval {
		day += interval
		days = append(days, int(day))
	}
	return days
}

// dailyPrecip distributes a total precipitation amount pTotal over nDays
// days, either evenly (pWetDays == 1) or over an evenly-spaced set of wet
// days, following precip_daily.cpp's make_daily_precip. A floor of 1/nDays
// is applied to pWetDays so at least one wet day exists (SPEC_FULL.md §9
// Open Question resolution).
func dailyPrecip(pTotal float64, nDays int, pWetDays float64) []float64 {
	out := make([]float64, nDays)
	if pWetDays == 1.0 {
		v := pTotal / float64(nDays)
		for i := range out {
			out[i] = v
		}
		return out
	}

	pWetDays = math.Max(pWetDays, 1.0/float64(nDays))
	wet := wetDayList(nDays, pWetDays)
	wetPrecip := pTotal / float64(len(wet))

	j := 0
	for i := range out {
		if j < len(wet) && i+1 == wet[j] {
			out[i] = wetPrecip
			j++
		}
	}
	return out
}
