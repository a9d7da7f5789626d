package temporal

import "fmt"

// LocalDate is a calendar date on the proleptic Gregorian calendar with no
// time-of-day and no time zone, such as 2021-03-14. Every LocalDate this
// package produces is calendar-valid: the day always fits the length of
// its month.
type LocalDate struct {
	year  int
	month Month
	day   int
}

// The representable date range.
var (
	minEpochDay = epochDayOf(MinYear, January, 1)
	maxEpochDay = epochDayOf(MaxYear, December, 31)
)

// LocalDateOf returns the LocalDate for the given calendar fields. Returns
// an error wrapping [ErrField] if the year is outside [MinYear, MaxYear],
// the month is invalid, or the day does not exist in the month.
func LocalDateOf(year int, month Month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("%w: year %d out of range %d to %d", ErrField, year, MinYear, MaxYear)
	}
	if month < January || month > December {
		return LocalDate{}, fmt.Errorf("%w: month value %d out of range 1-12", ErrField, int(month))
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return LocalDate{}, fmt.Errorf(
			"%w: day-of-month %d out of range 1-%d for %s %d",
			ErrField, day, DaysInMonth(year, month), month, year,
		)
	}
	return LocalDate{year: year, month: month, day: day}, nil
}

// MustLocalDateOf is like [LocalDateOf] but panics on invalid fields.
func MustLocalDateOf(year int, month Month, day int) LocalDate {
	d, err := LocalDateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// LocalDateOfYearDay returns the LocalDate for a year and 1-based
// day-of-year. Returns an error wrapping [ErrField] if the ordinal is
// outside the year's length.
func LocalDateOfYearDay(year, dayOfYear int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("%w: year %d out of range %d to %d", ErrField, year, MinYear, MaxYear)
	}
	if dayOfYear < 1 || dayOfYear > DaysInYear(year) {
		return LocalDate{}, fmt.Errorf(
			"%w: day-of-year %d out of range 1-%d for year %d",
			ErrField, dayOfYear, DaysInYear(year), year,
		)
	}
	month, day := dateOfOrdinal(year, dayOfYear)
	return LocalDate{year: year, month: month, day: day}, nil
}

// LocalDateOfEpochDay returns the LocalDate the given number of days after
// 1970-01-01 (before, for negative counts). Returns an error wrapping
// [ErrField] outside the representable range.
func LocalDateOfEpochDay(epochDay int64) (LocalDate, error) {
	if epochDay < minEpochDay || epochDay > maxEpochDay {
		return LocalDate{}, fmt.Errorf("%w: epoch day %d out of range", ErrField, epochDay)
	}
	y, m, d := dateOfEpochDay(epochDay)
	return LocalDate{year: y, month: m, day: d}, nil
}

// LocalDateNow returns the current date on the UTC clock.
func LocalDateNow() LocalDate {
	return LocalDateNowWithClock(SystemClockUTC())
}

// LocalDateNowWithClock returns the current date of the given clock.
func LocalDateNowWithClock(c Clock) LocalDate {
	y, m, d := dateOfEpochDay(floorDiv(c.Instant().EpochSeconds(), secondsPerDay))
	return LocalDate{year: y, month: m, day: d}
}

// Year returns the proleptic year.
func (d LocalDate) Year() int { return d.year }

// Month returns the month of the year.
func (d LocalDate) Month() Month { return d.month }

// Day returns the day of the month.
func (d LocalDate) Day() int { return d.day }

// DayOfYear returns the 1-based ordinal day of the year.
func (d LocalDate) DayOfYear() int { return ordinalOfDate(d.year, d.month, d.day) }

// DayOfWeek returns the day of the week.
func (d LocalDate) DayOfWeek() DayOfWeek { return weekdayOf(d.year, d.month, d.day) }

// EpochDay returns the number of days from 1970-01-01 to d.
func (d LocalDate) EpochDay() int64 { return epochDayOf(d.year, d.month, d.day) }

// IsLeapYear reports whether the year of d is a leap year.
func (d LocalDate) IsLeapYear() bool { return IsLeapYear(d.year) }

// LengthOfMonth returns the number of days in the month of d.
func (d LocalDate) LengthOfMonth() int { return DaysInMonth(d.year, d.month) }

// LengthOfYear returns the number of days in the year of d.
func (d LocalDate) LengthOfYear() int { return DaysInYear(d.year) }

// PlusDays returns d plus the given number of days, clamping at the bounds
// of the representable date range.
func (d LocalDate) PlusDays(days int64) LocalDate {
	ed := saturatingAdd(d.EpochDay(), days)
	if ed < minEpochDay {
		ed = minEpochDay
	} else if ed > maxEpochDay {
		ed = maxEpochDay
	}
	y, m, dd := dateOfEpochDay(ed)
	return LocalDate{year: y, month: m, day: dd}
}

// MinusDays returns d minus the given number of days, clamping at the
// bounds of the representable date range.
func (d LocalDate) MinusDays(days int64) LocalDate { return d.PlusDays(saturatingNeg(days)) }

// PlusWeeks returns d plus the given number of weeks.
func (d LocalDate) PlusWeeks(weeks int64) LocalDate {
	return d.PlusDays(saturatingMul(weeks, 7))
}

// MinusWeeks returns d minus the given number of weeks.
func (d LocalDate) MinusWeeks(weeks int64) LocalDate { return d.PlusWeeks(saturatingNeg(weeks)) }

// PlusMonths returns d plus the given number of months. The day-of-month
// clamps to the length of the target month, so Jan 31 plus one month is
// Feb 28 (29 in a leap year), never an error and never a rollover into
// March. Panics if the resulting year leaves [MinYear, MaxYear].
func (d LocalDate) PlusMonths(months int64) LocalDate {
	total := saturatingAdd(saturatingMul(int64(d.year), 12)+int64(d.month-1), months)
	year := floorDiv(total, 12)
	month := Month(floorMod(total, 12) + 1)
	if year < MinYear || year > MaxYear {
		panic(fmt.Sprintf("temporal: year %d out of range in PlusMonths", year))
	}
	day := d.day
	if length := DaysInMonth(int(year), month); day > length {
		day = length
	}
	return LocalDate{year: int(year), month: month, day: day}
}

// MinusMonths returns d minus the given number of months, under the same
// clamping and panic rules as PlusMonths.
func (d LocalDate) MinusMonths(months int64) LocalDate { return d.PlusMonths(saturatingNeg(months)) }

// PlusYears returns d plus the given number of years. Feb 29 clamps to
// Feb 28 when the target year is not a leap year; every other month/day
// combination passes through unchanged. Panics if the resulting year
// leaves [MinYear, MaxYear]; year overflow is fatal, not saturated.
func (d LocalDate) PlusYears(years int64) LocalDate {
	year := saturatingAdd(int64(d.year), years)
	if year < MinYear || year > MaxYear {
		panic(fmt.Sprintf("temporal: year %d out of range in PlusYears", year))
	}
	day := d.day
	if d.month == February && day == 29 && !IsLeapYear(int(year)) {
		day = 28
	}
	return LocalDate{year: int(year), month: d.month, day: day}
}

// MinusYears returns d minus the given number of years, under the same
// clamping and panic rules as PlusYears.
func (d LocalDate) MinusYears(years int64) LocalDate { return d.PlusYears(saturatingNeg(years)) }

// PlusPeriod returns d plus the given period, adding the total months
// first and the days second, each under the usual clamping rules.
func (d LocalDate) PlusPeriod(p Period) LocalDate {
	return d.PlusMonths(p.TotalMonths()).PlusDays(int64(p.Days))
}

// MinusPeriod returns d minus the given period.
func (d LocalDate) MinusPeriod(p Period) LocalDate { return d.PlusPeriod(p.Negated()) }

// WithYear returns d with the year replaced. Unlike PlusYears, an invalid
// result such as Feb 29 in a non-leap year is an error wrapping
// [ErrField], not clamped.
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	return LocalDateOf(year, d.month, d.day)
}

// WithMonth returns d with the month replaced. An invalid result such as
// day 31 in a 30-day month is an error wrapping [ErrField], not clamped.
func (d LocalDate) WithMonth(month Month) (LocalDate, error) {
	return LocalDateOf(d.year, month, d.day)
}

// WithDayOfMonth returns d with the day-of-month replaced. A day beyond
// the month's length is an error wrapping [ErrField], not clamped.
func (d LocalDate) WithDayOfMonth(day int) (LocalDate, error) {
	return LocalDateOf(d.year, d.month, day)
}

// WithDayOfYear returns d with the date replaced by the 1-based ordinal
// day within the same year. An ordinal beyond the year's length is an
// error wrapping [ErrField].
func (d LocalDate) WithDayOfYear(dayOfYear int) (LocalDate, error) {
	return LocalDateOfYearDay(d.year, dayOfYear)
}

// FirstDayOfMonth returns the first day of the month of d.
func (d LocalDate) FirstDayOfMonth() LocalDate {
	return LocalDate{year: d.year, month: d.month, day: 1}
}

// LastDayOfMonth returns the last day of the month of d.
func (d LocalDate) LastDayOfMonth() LocalDate {
	return LocalDate{year: d.year, month: d.month, day: d.LengthOfMonth()}
}

// FirstDayOfNextMonth returns the first day of the month after d.
func (d LocalDate) FirstDayOfNextMonth() LocalDate {
	return d.PlusMonths(1).FirstDayOfMonth()
}

// FirstDayOfYear returns January 1 of the year of d.
func (d LocalDate) FirstDayOfYear() LocalDate {
	return LocalDate{year: d.year, month: January, day: 1}
}

// LastDayOfYear returns December 31 of the year of d.
func (d LocalDate) LastDayOfYear() LocalDate {
	return LocalDate{year: d.year, month: December, day: 31}
}

// FirstDayOfNextYear returns January 1 of the year after d.
func (d LocalDate) FirstDayOfNextYear() LocalDate {
	return d.PlusYears(1).FirstDayOfYear()
}

// FirstInMonth returns the first occurrence of dow within the month of d.
func (d LocalDate) FirstInMonth(dow DayOfWeek) LocalDate {
	first := d.FirstDayOfMonth()
	delta := floorMod(int64(dow-first.DayOfWeek()), 7)
	return first.PlusDays(delta)
}

// LastInMonth returns the last occurrence of dow within the month of d.
func (d LocalDate) LastInMonth(dow DayOfWeek) LocalDate {
	last := d.LastDayOfMonth()
	delta := floorMod(int64(last.DayOfWeek()-dow), 7)
	return last.MinusDays(delta)
}

// Next returns the first date after d that falls on dow, always moving
// forward at least one day: if d is already on dow the result is a full
// week later.
func (d LocalDate) Next(dow DayOfWeek) LocalDate {
	delta := floorMod(int64(dow-d.DayOfWeek()), 7)
	if delta == 0 {
		delta = 7
	}
	return d.PlusDays(delta)
}

// NextOrSame returns d if it already falls on dow, otherwise the first
// later date that does.
func (d LocalDate) NextOrSame(dow DayOfWeek) LocalDate {
	return d.PlusDays(floorMod(int64(dow-d.DayOfWeek()), 7))
}

// Previous returns the last date before d that falls on dow, always moving
// backward at least one day: if d is already on dow the result is a full
// week earlier.
func (d LocalDate) Previous(dow DayOfWeek) LocalDate {
	delta := floorMod(int64(d.DayOfWeek()-dow), 7)
	if delta == 0 {
		delta = 7
	}
	return d.MinusDays(delta)
}

// PreviousOrSame returns d if it already falls on dow, otherwise the last
// earlier date that does.
func (d LocalDate) PreviousOrSame(dow DayOfWeek) LocalDate {
	return d.MinusDays(floorMod(int64(d.DayOfWeek()-dow), 7))
}

// AtTime combines d with a time of day.
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// AtStartOfDay combines d with midnight.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return LocalDateTime{date: d}
}

// Compare returns -1, 0, or +1 as d is before, equal to, or after other.
func (d LocalDate) Compare(other LocalDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month - other.month))
	default:
		return sign(d.day - other.day)
	}
}

// IsBefore reports whether d is strictly before other.
func (d LocalDate) IsBefore(other LocalDate) bool { return d.Compare(other) < 0 }

// IsAfter reports whether d is strictly after other.
func (d LocalDate) IsAfter(other LocalDate) bool { return d.Compare(other) > 0 }

// IsOnOrBefore reports whether d is on or before other.
func (d LocalDate) IsOnOrBefore(other LocalDate) bool { return d.Compare(other) <= 0 }

// IsOnOrAfter reports whether d is on or after other.
func (d LocalDate) IsOnOrAfter(other LocalDate) bool { return d.Compare(other) >= 0 }

// String returns the ISO-8601 representation of d, such as "2021-03-14".
func (d LocalDate) String() string {
	return string(appendDate(make([]byte, 0, 10), d))
}

// MarshalJSON implements the json.Marshaler interface. The date is a
// quoted string in the ISO-8601 format.
func (d LocalDate) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 12), '"')
	b = appendDate(b, d)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date must
// be a quoted string in the ISO-8601 format.
func (d *LocalDate) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLocalDate(unquote(data))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
