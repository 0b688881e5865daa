// Package calendar implements day-of-year arithmetic for wrap-around
// growing seasons (SPEC_FULL.md §4.I) and solar-declination-based
// daylength (SPEC_FULL.md §4.B). The Besselian expansion below is
// transcribed from original_source/wsim.lsm/src/daylength.cpp, which the
// teacher has no equivalent of; SPEC_FULL.md's DESIGN.md justifies
// building this directly against the standard library math package rather
// than delegating to a generic solar-position library, since the exact
// legacy recipe (coefficients, harmonic count, epoch) must be reproduced
// bit-for-bit and no example dependency implements it.
package calendar

import "math"

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given Gregorian month
// (1-12) of year y.
func DaysInMonth(y, m int) int {
	if m == 2 && IsLeapYear(y) {
		return 29
	}
	return monthDays[m-1]
}

// DayOfYear returns the 1-based day-of-year for a Gregorian calendar date.
func DayOfYear(y, m, d int) int {
	doy := d
	for i := 1; i < m; i++ {
		doy += DaysInMonth(y, i)
	}
	return doy
}

// JulianDay1900 returns the number of days elapsed since 1900-01-00 12:00
// UT for the Gregorian date (y, m, d), the epoch used by the Besselian
// solar-declination expansion below.
func JulianDay1900(y, m, d int) int {
	doy := DayOfYear(y, m, d)
	days := 0
	for yp := 1900; yp < y; yp++ {
		days += 365
		if IsLeapYear(yp) {
			days++
		}
	}
	return days + doy
}

// solarDeclination computes the sun's apparent latitude (radians) on the
// day daysSince1900 days after the 1900-01-00 12:00 UT epoch, via a
// Besselian expansion of the eccentricity, mean obliquity, and true
// anomaly of Earth's orbit carried to the 5th harmonic (SPEC_FULL.md §4.B).
func solarDeclination(daysSince1900 int) float64 {
	tj := float64(daysSince1900) / 36525.0
	tjsq := tj * tj

	meanAnomaly := (358.475833 + math.Mod(0.985600267*float64(daysSince1900), 360.0) -
		0.150e-3*tjsq - 0.3e-5*math.Pow(tj, 3)) * math.Pi / 180
	meanAnomaly = math.Mod(meanAnomaly, 2*math.Pi)

	eccentricity := 0.01675104 - 0.4180e-4*tj - 0.126e-6*tjsq

	meanObliquity := (23.4522944 - 0.0130125*tj - 0.164e-5*tjsq +
		0.503e-6*math.Pow(tj, 3)) * math.Pi / 180

	trueAnomaly := meanAnomaly +
		(2.0*eccentricity-0.24*(eccentricity*eccentricity)+5.0/96.0*math.Pow(eccentricity, 5))*math.Sin(meanAnomaly) +
		(1.25*(eccentricity*eccentricity)-11.0/24.0*math.Pow(eccentricity, 4))*math.Sin(2.0*meanAnomaly) +
		(13.0/12.0*math.Pow(eccentricity, 3)-43.0/64.0*math.Pow(eccentricity, 5))*math.Sin(3.0*meanAnomaly) +
		(103.0/960.0*math.Pow(eccentricity, 4))*math.Sin(4.0*meanAnomaly) +
		(1097.0/960.0*math.Pow(eccentricity, 5))*math.Sin(5.0*meanAnomaly)

	periLong := (281.220833 + 0.470684e-4*float64(daysSince1900) +
		0.453e-3*tjsq + 0.3e-5*math.Pow(tj, 3)) * math.Pi / 180

	trueLongitude := math.Mod(trueAnomaly+periLong, 2*math.Pi)

	return meanObliquity * math.Sin(trueLongitude)
}

// dayHours converts a solar declination and observer latitude (both
// radians) into daylight hours, saturating to 0 or 24 at the poles.
func dayHours(sunLat, earthLat float64) float64 {
	clon := -math.Tan(earthLat) * math.Tan(sunLat)
	if clon >= 1.0 {
		return 0.0
	}
	if clon <= -1.0 {
		return 24.0
	}
	return 24.0 * math.Acos(clon) / math.Pi
}

// DayLength returns the number of daylight hours at latitude lat (degrees)
// on the Gregorian date (y, m, d).
func DayLength(lat float64, y, m, d int) float64 {
	sunLat := solarDeclination(JulianDay1900(y, m, d))
	return dayHours(sunLat, lat*math.Pi/180.0)
}

// AverageDayLength returns the arithmetic mean of DayLength over every day
// of the Gregorian month (y, m).
func AverageDayLength(lat float64, y, m int) float64 {
	n := DaysInMonth(y, m)
	sum := 0.0
	for d := 1; d <= n; d++ {
		sum += DayLength(lat, y, m, d)
	}
	return sum / float64(n)
}
