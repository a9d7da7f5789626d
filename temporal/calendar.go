package temporal

import "time"

// Calendar field math for the proleptic Gregorian calendar. These functions
// are pure and total: every valid (year, month) pair produces a defined
// result, and no input returns an error.

// Years representable by this package. The bounds match java.time and leave
// ample headroom inside the range of the civil-calendar primitive.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

const (
	secondsPerDay   = 86_400
	nanosPerSecond  = 1_000_000_000
	nanosPerMinute  = 60 * nanosPerSecond
	nanosPerHour    = 3_600 * nanosPerSecond
	nanosPerDay     = secondsPerDay * nanosPerSecond
	millisPerSecond = 1_000
	nanosPerMilli   = 1_000_000
)

// IsLeapYear reports whether year is a leap year under the Gregorian rule:
// divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// monthLengths holds the day count of each month in a non-leap year,
// indexed by Month value.
var monthLengths = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in month of year.
func DaysInMonth(year int, month Month) int {
	if month == February && IsLeapYear(year) {
		return 29
	}
	return monthLengths[month]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// firstDayOfYearByMonth holds the zero-based ordinal of the first day of
// each month in a non-leap year.
var firstDayOfYearByMonth = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// ordinalOfDate returns the 1-based day-of-year of (year, month, day).
func ordinalOfDate(year int, month Month, day int) int {
	ord := firstDayOfYearByMonth[month] + day
	if month > February && IsLeapYear(year) {
		ord++
	}
	return ord
}

// dateOfOrdinal converts a 1-based day-of-year back to (month, day). The
// caller guarantees 1 <= ordinal <= DaysInYear(year).
func dateOfOrdinal(year, ordinal int) (Month, int) {
	month := January
	for ordinal > DaysInMonth(year, month) {
		ordinal -= DaysInMonth(year, month)
		month++
	}
	return month, ordinal
}

// The civil-calendar primitive. Exact day-count arithmetic, weekday
// derivation, and epoch conversion delegate to the standard time package
// rather than reimplementing Gregorian cycle math.

// civilTime returns the midnight UTC time.Time for a calendar date.
func civilTime(year int, month Month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// epochDayOf returns the number of days from 1970-01-01 to the given date.
func epochDayOf(year int, month Month, day int) int64 {
	// Midnight UTC is always an exact multiple of 86400 seconds from the
	// epoch, so the division is exact for negative dates too.
	return floorDiv(civilTime(year, month, day).Unix(), secondsPerDay)
}

// dateOfEpochDay converts a day count from 1970-01-01 back to calendar
// fields.
func dateOfEpochDay(epochDay int64) (int, Month, int) {
	y, m, d := time.Unix(epochDay*secondsPerDay, 0).UTC().Date()
	return y, Month(m), d
}

// weekdayOf derives the day of the week from the civil-calendar weekday
// enumeration. The mapping from time.Weekday (Sunday=0..Saturday=6) to
// DayOfWeek (Monday=1..Sunday=7) is total and bijective.
func weekdayOf(year int, month Month, day int) DayOfWeek {
	wd := civilTime(year, month, day).Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return DayOfWeek(wd)
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns the Euclidean remainder of a/b, always in [0, b) for
// positive b regardless of the sign of a.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
