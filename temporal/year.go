package temporal

import (
	"fmt"
	"strconv"
)

// Year is a proleptic calendar year, such as 2021 or -44.
type Year int

// YearOf returns the Year for the given proleptic value. Returns an
// error wrapping [ErrField] outside [MinYear, MaxYear].
func YearOf(value int) (Year, error) {
	if value < MinYear || value > MaxYear {
		return 0, fmt.Errorf("%w: year %d out of range", ErrField, value)
	}
	return Year(value), nil
}

// YearNow returns the current year of the system clock in UTC.
func YearNow() Year { return YearNowWithClock(SystemClockUTC()) }

// YearNowWithClock returns the current year of the given clock.
func YearNowWithClock(c Clock) Year {
	return Year(LocalDateNowWithClock(c).Year())
}

// Value returns the proleptic year value.
func (y Year) Value() int { return int(y) }

// IsLeap reports whether y is a leap year under the proleptic Gregorian
// rules.
func (y Year) IsLeap() bool { return IsLeapYear(int(y)) }

// Length returns the number of days in y, 365 or 366.
func (y Year) Length() int { return DaysInYear(int(y)) }

// Plus returns y plus the given years. Panics when the result leaves the
// supported year range.
func (y Year) Plus(years int64) Year {
	v := int64(y) + years
	if v < MinYear || v > MaxYear {
		panic(fmt.Sprintf("temporal: year overflow adding %d years to %d", years, int(y)))
	}
	return Year(v)
}

// Minus returns y minus the given years. Panics when the result leaves
// the supported year range.
func (y Year) Minus(years int64) Year { return y.Plus(saturatingNeg(years)) }

// AtMonth pairs y with a month.
func (y Year) AtMonth(month Month) YearMonth {
	return YearMonth{year: int(y), month: month}
}

// AtMonthDay returns the date of the given month and day in y. Returns
// an error wrapping [ErrField] when the day does not exist in that
// month, such as February 29 of a common year.
func (y Year) AtMonthDay(month Month, day int) (LocalDate, error) {
	return LocalDateOf(int(y), month, day)
}

// AtDay returns the date at the given 1-based day of year. Returns an
// error wrapping [ErrField] when dayOfYear exceeds the year's length.
func (y Year) AtDay(dayOfYear int) (LocalDate, error) {
	return LocalDateOfYearDay(int(y), dayOfYear)
}

// String returns the decimal year value, unpadded.
func (y Year) String() string { return strconv.Itoa(int(y)) }
