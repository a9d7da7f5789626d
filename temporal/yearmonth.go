package temporal

import "fmt"

// YearMonth is a year paired with a month, such as 2021-03, with no day
// component.
type YearMonth struct {
	year  int
	month Month
}

// YearMonthOf returns the YearMonth for the given year and month.
// Returns an error wrapping [ErrField] on a year or month out of range.
func YearMonthOf(year int, month Month) (YearMonth, error) {
	if year < MinYear || year > MaxYear {
		return YearMonth{}, fmt.Errorf("%w: year %d out of range", ErrField, year)
	}
	if _, err := MonthOf(month.Value()); err != nil {
		return YearMonth{}, err
	}
	return YearMonth{year: year, month: month}, nil
}

// MustYearMonthOf is like [YearMonthOf] but panics on an invalid field.
func MustYearMonthOf(year int, month Month) YearMonth {
	ym, err := YearMonthOf(year, month)
	if err != nil {
		panic(err)
	}
	return ym
}

// YearMonthNow returns the current year-month of the system clock in
// UTC.
func YearMonthNow() YearMonth { return YearMonthNowWithClock(SystemClockUTC()) }

// YearMonthNowWithClock returns the current year-month of the given
// clock.
func YearMonthNowWithClock(c Clock) YearMonth {
	d := LocalDateNowWithClock(c)
	return YearMonth{year: d.Year(), month: d.Month()}
}

// Year returns the proleptic year.
func (ym YearMonth) Year() int { return ym.year }

// Month returns the month of the year.
func (ym YearMonth) Month() Month { return ym.month }

// IsLeapYear reports whether the year is a leap year.
func (ym YearMonth) IsLeapYear() bool { return IsLeapYear(ym.year) }

// LengthOfMonth returns the number of days in the month, accounting for
// leap years.
func (ym YearMonth) LengthOfMonth() int { return DaysInMonth(ym.year, ym.month) }

// LengthOfYear returns the number of days in the year, 365 or 366.
func (ym YearMonth) LengthOfYear() int { return DaysInYear(ym.year) }

// PlusMonths returns ym plus the given months, carrying across year
// boundaries. Panics when the result leaves the supported year range.
func (ym YearMonth) PlusMonths(months int64) YearMonth {
	total := int64(ym.year)*12 + int64(ym.month-1) + months
	year := floorDiv(total, 12)
	if year < MinYear || year > MaxYear {
		panic(fmt.Sprintf("temporal: year overflow adding %d months to %v", months, ym))
	}
	return YearMonth{year: int(year), month: Month(floorMod(total, 12)) + 1}
}

// MinusMonths returns ym minus the given months.
func (ym YearMonth) MinusMonths(months int64) YearMonth { return ym.PlusMonths(saturatingNeg(months)) }

// PlusYears returns ym plus the given years. Panics when the result
// leaves the supported year range.
func (ym YearMonth) PlusYears(years int64) YearMonth {
	year := int64(ym.year) + years
	if year < MinYear || year > MaxYear {
		panic(fmt.Sprintf("temporal: year overflow adding %d years to %v", years, ym))
	}
	return YearMonth{year: int(year), month: ym.month}
}

// MinusYears returns ym minus the given years.
func (ym YearMonth) MinusYears(years int64) YearMonth { return ym.PlusYears(saturatingNeg(years)) }

// WithYear returns ym with the year replaced. Returns an error wrapping
// [ErrField] on a year out of range.
func (ym YearMonth) WithYear(year int) (YearMonth, error) {
	return YearMonthOf(year, ym.month)
}

// WithMonth returns ym with the month replaced. Returns an error
// wrapping [ErrField] on a month out of range.
func (ym YearMonth) WithMonth(month Month) (YearMonth, error) {
	return YearMonthOf(ym.year, month)
}

// AtDay returns the date at the given day of ym's month. Returns an
// error wrapping [ErrField] when the day does not exist in that month.
func (ym YearMonth) AtDay(day int) (LocalDate, error) {
	return LocalDateOf(ym.year, ym.month, day)
}

// FirstDayOfMonth returns the first date of ym's month.
func (ym YearMonth) FirstDayOfMonth() LocalDate {
	return LocalDate{year: ym.year, month: ym.month, day: 1}
}

// LastDayOfMonth returns the last date of ym's month, accounting for
// leap years.
func (ym YearMonth) LastDayOfMonth() LocalDate {
	return LocalDate{year: ym.year, month: ym.month, day: ym.LengthOfMonth()}
}

// Compare returns -1, 0, or +1 as ym is before, equal to, or after
// other in the calendar.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.year != other.year:
		if ym.year < other.year {
			return -1
		}
		return 1
	case ym.month != other.month:
		if ym.month < other.month {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether ym is strictly before other.
func (ym YearMonth) IsBefore(other YearMonth) bool { return ym.Compare(other) < 0 }

// IsAfter reports whether ym is strictly after other.
func (ym YearMonth) IsAfter(other YearMonth) bool { return ym.Compare(other) > 0 }

// IsOnOrBefore reports whether ym is at or before other.
func (ym YearMonth) IsOnOrBefore(other YearMonth) bool { return ym.Compare(other) <= 0 }

// IsOnOrAfter reports whether ym is at or after other.
func (ym YearMonth) IsOnOrAfter(other YearMonth) bool { return ym.Compare(other) >= 0 }

// String returns the ISO-8601 representation of ym, such as "2021-03".
func (ym YearMonth) String() string {
	b := appendYear(make([]byte, 0, 8), ym.year)
	b = append(b, '-')
	return string(appendPadded(b, ym.month.Value(), 2))
}
