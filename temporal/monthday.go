package temporal

import "fmt"

// MonthDay is a month paired with a day of the month, such as --03-14,
// with no year component. February 29 is a valid MonthDay even though it
// exists only in leap years; [MonthDay.AtYear] clamps it to February 28
// when the target year is common.
type MonthDay struct {
	month Month
	day   int
}

// MonthDayOf returns the MonthDay for the given month and day. The day
// is checked against the month's maximum length in any year, so
// February 29 is accepted and February 30 is not. Returns an error
// wrapping [ErrField] on an invalid combination.
func MonthDayOf(month Month, day int) (MonthDay, error) {
	if _, err := MonthOf(month.Value()); err != nil {
		return MonthDay{}, err
	}
	if day < 1 || day > month.MaxLength() {
		return MonthDay{}, fmt.Errorf("%w: day %d out of range for %v", ErrField, day, month)
	}
	return MonthDay{month: month, day: day}, nil
}

// MustMonthDayOf is like [MonthDayOf] but panics on an invalid field.
func MustMonthDayOf(month Month, day int) MonthDay {
	md, err := MonthDayOf(month, day)
	if err != nil {
		panic(err)
	}
	return md
}

// MonthDayNow returns the current month-day of the system clock in UTC.
func MonthDayNow() MonthDay { return MonthDayNowWithClock(SystemClockUTC()) }

// MonthDayNowWithClock returns the current month-day of the given clock.
func MonthDayNowWithClock(c Clock) MonthDay {
	d := LocalDateNowWithClock(c)
	return MonthDay{month: d.Month(), day: d.Day()}
}

// Month returns the month of the year.
func (md MonthDay) Month() Month { return md.month }

// Day returns the day of the month.
func (md MonthDay) Day() int { return md.day }

// IsValidYear reports whether md exists in the given year, which is
// false only for February 29 of a common year.
func (md MonthDay) IsValidYear(year int) bool {
	return md.day <= DaysInMonth(year, md.month)
}

// AtYear returns the date of md in the given year, clamping February 29
// to February 28 when the year is common. Panics when the year is outside
// [MinYear, MaxYear].
func (md MonthDay) AtYear(year int) LocalDate {
	if year < MinYear || year > MaxYear {
		panic(fmt.Sprintf("temporal: year %d out of range in AtYear", year))
	}
	day := md.day
	if length := DaysInMonth(year, md.month); day > length {
		day = length
	}
	return LocalDate{year: year, month: md.month, day: day}
}

// Compare returns -1, 0, or +1 as md is before, equal to, or after
// other in the calendar.
func (md MonthDay) Compare(other MonthDay) int {
	switch {
	case md.month != other.month:
		if md.month < other.month {
			return -1
		}
		return 1
	case md.day != other.day:
		if md.day < other.day {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether md is strictly before other.
func (md MonthDay) IsBefore(other MonthDay) bool { return md.Compare(other) < 0 }

// IsAfter reports whether md is strictly after other.
func (md MonthDay) IsAfter(other MonthDay) bool { return md.Compare(other) > 0 }

// IsOnOrBefore reports whether md is at or before other.
func (md MonthDay) IsOnOrBefore(other MonthDay) bool { return md.Compare(other) <= 0 }

// IsOnOrAfter reports whether md is at or after other.
func (md MonthDay) IsOnOrAfter(other MonthDay) bool { return md.Compare(other) >= 0 }

// String returns the ISO-8601 representation of md, such as "--03-14".
func (md MonthDay) String() string {
	b := append(make([]byte, 0, 7), '-', '-')
	b = appendPadded(b, md.month.Value(), 2)
	b = append(b, '-')
	return string(appendPadded(b, md.day, 2))
}
