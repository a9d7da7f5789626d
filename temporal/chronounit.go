package temporal

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ChronoUnit is a standard unit of time, from nanoseconds up to years.
// The set partitions into time-based units with a fixed length (Nanos
// through HalfDays) and date-based calendar units (Days through Years);
// every unit is exactly one of the two.
type ChronoUnit int

// The supported units.
const (
	Nanos ChronoUnit = iota
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
)

// unitNanos holds the nanosecond length of each unit. Months and Years
// have no fixed calendar length and use the documented flat
// approximations of 30 and 365 days.
var unitNanos = map[ChronoUnit]int64{
	Nanos:    1,
	Millis:   nanosPerMilli,
	Seconds:  nanosPerSecond,
	Minutes:  nanosPerMinute,
	Hours:    nanosPerHour,
	HalfDays: 12 * nanosPerHour,
	Days:     nanosPerDay,
	Weeks:    7 * nanosPerDay,
	Months:   30 * nanosPerDay,
	Years:    365 * nanosPerDay,
}

// ChronoUnits returns all units in ascending order of length.
func ChronoUnits() []ChronoUnit {
	units := maps.Keys(unitNanos)
	slices.Sort(units)
	return units
}

// IsTimeBased reports whether u has a fixed length of a day or less.
func (u ChronoUnit) IsTimeBased() bool { return u >= Nanos && u <= HalfDays }

// IsDateBased reports whether u is a calendar unit of a day or more.
func (u ChronoUnit) IsDateBased() bool { return u >= Days && u <= Years }

// Duration returns the length of u as an exact [Duration]. Months and
// Years report the flat 30-day and 365-day approximations. Panics on a
// value outside the supported unit set.
func (u ChronoUnit) Duration() Duration {
	length, ok := unitNanos[u]
	if !ok {
		panic(fmt.Sprintf("temporal: %v has no unit length", u))
	}
	return DurationOfNanos(length)
}

// AddTo returns temporal plus the given amount of u, dispatching to the
// matching per-type arithmetic. A combination with no defined meaning,
// such as Months on an [Instant] with no calendar context, returns an
// error wrapping [ErrUnsupported] that names the combination.
func (u ChronoUnit) AddTo(temporal Temporal, amount int64) (Temporal, error) {
	return temporal.addUnit(u, amount)
}

// Between returns the number of whole units from startInclusive to
// endExclusive: the exact epoch-nanosecond difference divided by the
// unit's fixed length, truncated toward zero. Months and Years divide by
// the flat 30-day and 365-day approximations rather than counting true
// calendar months or years. A value outside the supported unit set is an
// error wrapping [ErrUnsupported].
func (u ChronoUnit) Between(startInclusive, endExclusive TemporalInstant) (int64, error) {
	length, ok := unitNanos[u]
	if !ok {
		return 0, fmt.Errorf("%w: %v is not a supported unit", ErrUnsupported, u)
	}
	diff := new(big.Int).Sub(endExclusive.EpochNanoseconds(), startInclusive.EpochNanoseconds())
	return clampToInt64(diff.Quo(diff, big.NewInt(length))), nil
}

var chronoUnitNames = map[ChronoUnit]string{
	Nanos:    "NANOS",
	Millis:   "MILLIS",
	Seconds:  "SECONDS",
	Minutes:  "MINUTES",
	Hours:    "HOURS",
	HalfDays: "HALF_DAYS",
	Days:     "DAYS",
	Weeks:    "WEEKS",
	Months:   "MONTHS",
	Years:    "YEARS",
}

// String returns the upper-case name of u, such as "HALF_DAYS".
func (u ChronoUnit) String() string {
	if name, ok := chronoUnitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("ChronoUnit(%d)", int(u))
}

// unsupportedUnit constructs the error for a unit/type combination with no
// defined meaning.
func unsupportedUnit(u ChronoUnit, temporal Temporal) error {
	return fmt.Errorf("%w: unit %v has no meaning for %T", ErrUnsupported, u, temporal)
}

// addUnit implements [Temporal] for Instant. Date-based units need a
// calendar context an instant does not have.
func (i Instant) addUnit(u ChronoUnit, amount int64) (Temporal, error) {
	switch u {
	case Nanos:
		return i.PlusNanos(amount), nil
	case Millis:
		return i.PlusMillis(amount), nil
	case Seconds:
		return i.PlusSeconds(amount), nil
	case Minutes:
		return i.PlusSeconds(saturatingMul(amount, 60)), nil
	case Hours:
		return i.PlusSeconds(saturatingMul(amount, 3_600)), nil
	case HalfDays:
		return i.PlusSeconds(saturatingMul(amount, 12*3_600)), nil
	default:
		return nil, unsupportedUnit(u, i)
	}
}

// addUnit implements [Temporal] for LocalDate. Time-based units have no
// meaning for a bare date.
func (d LocalDate) addUnit(u ChronoUnit, amount int64) (Temporal, error) {
	switch u {
	case Days:
		return d.PlusDays(amount), nil
	case Weeks:
		return d.PlusWeeks(amount), nil
	case Months:
		return d.PlusMonths(amount), nil
	case Years:
		return d.PlusYears(amount), nil
	default:
		return nil, unsupportedUnit(u, d)
	}
}

// addUnit implements [Temporal] for LocalTime. Date-based units have no
// meaning for a bare time of day.
func (t LocalTime) addUnit(u ChronoUnit, amount int64) (Temporal, error) {
	switch u {
	case Nanos:
		return t.PlusNanos(amount), nil
	case Millis:
		return t.PlusMillis(amount), nil
	case Seconds:
		return t.PlusSeconds(amount), nil
	case Minutes:
		return t.PlusMinutes(amount), nil
	case Hours:
		return t.PlusHours(amount), nil
	case HalfDays:
		return t.PlusHours(floorMod(amount, 2) * 12), nil
	default:
		return nil, unsupportedUnit(u, t)
	}
}

// addUnit implements [Temporal] for LocalDateTime, which supports every
// unit.
func (dt LocalDateTime) addUnit(u ChronoUnit, amount int64) (Temporal, error) {
	switch u {
	case Nanos:
		return dt.PlusNanos(amount), nil
	case Millis:
		return dt.PlusMillis(amount), nil
	case Seconds:
		return dt.PlusSeconds(amount), nil
	case Minutes:
		return dt.PlusMinutes(amount), nil
	case Hours:
		return dt.PlusHours(amount), nil
	case HalfDays:
		return dt.plusUnits(amount, 12*nanosPerHour), nil
	case Days:
		return dt.PlusDays(amount), nil
	case Weeks:
		return dt.PlusWeeks(amount), nil
	case Months:
		return dt.PlusMonths(amount), nil
	case Years:
		return dt.PlusYears(amount), nil
	default:
		return nil, unsupportedUnit(u, dt)
	}
}
