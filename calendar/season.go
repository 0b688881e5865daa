package calendar

import "math"

// MissingDay is the sentinel used for a missing (NA) day-of-year value,
// mirroring grid.MissingInt (SPEC_FULL.md §9's note on representing
// missing-capable integers with a matching sentinel rather than a
// host-runtime NA).
const MissingDay int = math.MinInt32

// dayMissing reports whether d is the missing sentinel.
func dayMissing(d int) bool {
	return d == MissingDay
}

// IsGrowingSeason reports whether day of year d falls within [plant,
// harvest], honoring wrap-around when harvest < plant (SPEC_FULL.md §4.B).
// The second return value is false if plant or harvest is missing.
func IsGrowingSeason(d, plant, harvest int) (result bool, defined bool) {
	if dayMissing(plant) || dayMissing(harvest) {
		return false, false
	}
	if harvest >= plant {
		return d >= plant && d <= harvest, true
	}
	return d >= plant || d <= harvest, true
}

// DaysSincePlanting returns the number of days elapsed since planting for
// day of year d, or MissingDay if d falls outside the growing season or
// plant/harvest is missing (SPEC_FULL.md §4.B, ground truth
// original_source/wsim.agriculture/src/crop_calendar.cpp).
func DaysSincePlanting(d, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}
	if in, ok := IsGrowingSeason(d, plant, harvest); !ok || !in {
		return MissingDay
	}
	if harvest > plant || d >= plant {
		return d - plant
	}
	return 365 - plant + d
}

// DaysUntilHarvest returns the number of days remaining until harvest for
// day of year d, or MissingDay if d falls outside the growing season or
// plant/harvest is missing.
func DaysUntilHarvest(d, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}
	if in, ok := IsGrowingSeason(d, plant, harvest); !ok || !in {
		return MissingDay
	}
	if harvest > plant || d <= harvest {
		return harvest - d
	}
	return 365 - d + harvest
}

// FirstGrowingDay returns the first day in [from, to] within the growing
// season defined by (plant, harvest), or MissingDay if none is.
func FirstGrowingDay(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}
	if plant <= harvest || from <= to {
		for i := from; i <= to; i++ {
			if in, _ := IsGrowingSeason(i, plant, harvest); in {
				return i
			}
		}
		return MissingDay
	}
	for i := from; i <= 365; i++ {
		if in, _ := IsGrowingSeason(i, plant, harvest); in {
			return i
		}
	}
	for i := 1; i <= to; i++ {
		if in, _ := IsGrowingSeason(i, plant, harvest); in {
			return i
		}
	}
	return MissingDay
}

// LastGrowingDay returns the last day in [from, to] within the growing
// season defined by (plant, harvest), or MissingDay if none is.
func LastGrowingDay(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}
	if plant <= harvest || from <= to {
		for i := to; i >= from; i-- {
			if in, _ := IsGrowingSeason(i, plant, harvest); in {
				return i
			}
		}
		return MissingDay
	}
	for i := to; i >= 1; i-- {
		if in, _ := IsGrowingSeason(i, plant, harvest); in {
			return i
		}
	}
	for i := 365; i >= from; i-- {
		if in, _ := IsGrowingSeason(i, plant, harvest); in {
			return i
		}
	}
	return MissingDay
}
