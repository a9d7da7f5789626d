package temporal

import "fmt"

// Month represents a month of the year, January (1) through December (12).
type Month int

// The twelve months.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// MonthOf returns the Month for a 1-12 value. Returns an error wrapping
// [ErrField] for any other value.
func MonthOf(value int) (Month, error) {
	if value < 1 || value > 12 {
		return 0, fmt.Errorf("%w: month value %d out of range 1-12", ErrField, value)
	}
	return Month(value), nil
}

// Value returns the 1-12 value of m.
func (m Month) Value() int { return int(m) }

// Plus returns the month that is months after m, wrapping around the year
// in either direction.
func (m Month) Plus(months int64) Month {
	return Month(floorMod(int64(m)-1+months, 12) + 1)
}

// Minus returns the month that is months before m, wrapping around the
// year in either direction. The amount reduces modulo twelve before
// negation, so even the most negative count wraps the right way.
func (m Month) Minus(months int64) Month { return m.Plus(-floorMod(months, 12)) }

// Length returns the number of days in m given whether the year is a leap
// year.
func (m Month) Length(leapYear bool) int {
	if m == February && leapYear {
		return 29
	}
	return monthLengths[m]
}

// MinLength returns the shortest possible day count of m across all years.
func (m Month) MinLength() int { return monthLengths[m] }

// MaxLength returns the longest possible day count of m across all years.
func (m Month) MaxLength() int { return m.Length(true) }

var monthNames = [13]string{
	"", "JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// String returns the upper-case English name of m.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m]
}
