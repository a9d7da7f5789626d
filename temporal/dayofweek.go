package temporal

import "fmt"

// DayOfWeek represents a day of the week, Monday (1) through Sunday (7),
// following the ISO-8601 numbering.
type DayOfWeek int

// The seven days of the week.
const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayOfWeekOf returns the DayOfWeek for a 1-7 value. Returns an error
// wrapping [ErrField] for any other value.
func DayOfWeekOf(value int) (DayOfWeek, error) {
	if value < 1 || value > 7 {
		return 0, fmt.Errorf("%w: day-of-week value %d out of range 1-7", ErrField, value)
	}
	return DayOfWeek(value), nil
}

// Value returns the 1-7 value of d.
func (d DayOfWeek) Value() int { return int(d) }

// Plus returns the day of the week that is days after d, wrapping around
// the week in either direction.
func (d DayOfWeek) Plus(days int64) DayOfWeek {
	return DayOfWeek(floorMod(int64(d)-1+days, 7) + 1)
}

// Minus returns the day of the week that is days before d, wrapping around
// the week in either direction. The amount reduces modulo seven before
// negation, so even the most negative count wraps the right way.
func (d DayOfWeek) Minus(days int64) DayOfWeek { return d.Plus(-floorMod(days, 7)) }

var dayOfWeekNames = [8]string{
	"", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY",
	"SATURDAY", "SUNDAY",
}

// String returns the upper-case English name of d.
func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayOfWeekNames[d]
}
