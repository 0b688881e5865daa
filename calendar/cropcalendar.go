package calendar

// This file implements the growing_days_*/days_since_planting_* family
// (SPEC_FULL.md §4.I), transcribed directly from
// original_source/wsim.agriculture/src/crop_calendar.cpp — spec.md's
// prose description ("six interval-position cases") undercounts the
// actual case analysis, so these bodies follow the original control flow
// exactly rather than re-deriving it, per the top-level guidance to
// consult original_source to resolve ambiguity.

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GrowingDaysThisSeason returns the count of the longest contiguous
// in-season subinterval of [from, to] that shares its last day with the
// interval, or 0 if [from, to] does not end within the growing season.
func GrowingDaysThisSeason(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if plant > from && plant <= to {
		from = plant
	}
	if harvest >= from && harvest <= to {
		to = harvest
	}
	if in, _ := IsGrowingSeason(to, plant, harvest); in {
		return to - from + 1
	}
	return 0
}

// GrowingDaysThisYear returns the count of days in [from, to] within
// [plant, harvest] that contribute to a harvest in the current calendar
// year.
func GrowingDaysThisYear(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if to > harvest {
		to = harvest
	}
	if harvest > plant && from < plant {
		from = plant
	}
	return maxInt(0, to-from+1)
}

// GrowingDaysNextYear returns the count of days in [from, to] that
// contribute to next year's harvest; nonzero only when harvest < plant
// (a wrapped season).
func GrowingDaysNextYear(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if harvest > plant {
		return 0
	}
	if from < plant {
		from = plant
	}
	return maxInt(0, to-from+1)
}

// DaysSincePlantingThisYear returns the maximum number of growing days
// since planting that contribute to a harvest in the current calendar
// year, for the interval [from, to].
func DaysSincePlantingThisYear(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if from > harvest {
		return 0
	}
	if to > harvest {
		to = harvest
	}
	if harvest > plant {
		return to - plant + 1
	}
	return 365 - plant + 1 + to
}

// DaysSincePlantingNextYear returns the maximum number of growing days
// since planting that contribute to next year's harvest, for the
// interval [from, to]; nonzero only when harvest < plant.
func DaysSincePlantingNextYear(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if harvest > plant {
		return 0
	}
	return maxInt(0, to-plant+1)
}

// DaysSincePlantingThisSeason returns the maximum number of growing days
// between the most recent planting date and the interval [from, to].
func DaysSincePlantingThisSeason(from, to, plant, harvest int) int {
	if dayMissing(plant) || dayMissing(harvest) {
		return MissingDay
	}

	if plant < harvest {
		// Non-wrapped growing season; six configurations of [from,to]
		// relative to [plant,harvest]:
		//
		//          P---------H
		//    AAA  BBB  CCC  DDD  EEE
		//        FFFFFFFFFFFFFFF
		if to < plant || from > harvest {
			return 0 // cases A and E
		}
		if to > harvest {
			to = harvest // collapse case D into C
		}
		return to - plant + 1
	}

	// Wrapped growing season:
	// -----H       P-----
	// CCC DDD AAA BBB CCC
	//    FFFFFFFFFFFFF
	if from > harvest && to < plant {
		return 0 // case A
	}
	if to >= plant {
		return to - plant + 1
	}
	if to > harvest {
		to = harvest
	}
	return (365 - plant + 1) + to
}
