// Package temporal provides java.time-equivalent calendrical value types on
// the proleptic Gregorian calendar: dates, times of day, composite
// date-times, instants, durations, and periods.
//
// Every type in this package is an immutable value. Operations that look
// like mutations (Plus*, Minus*, With*) return a new value and leave the
// receiver untouched, so values are freely copyable and shareable across
// goroutines.
//
// Two failure policies apply, documented per method:
//
//   - Reject: factories, With* field setters, and undefined
//     ChronoUnit/type combinations refuse to produce a value and return an
//     error wrapping [ErrField] or [ErrUnsupported] naming the offending
//     field and value.
//   - Clamp: calendar arithmetic (PlusMonths, PlusYears) clamps the
//     day-of-month to the target month's length, [Duration] arithmetic
//     saturates at its numeric bounds, and [LocalTime] arithmetic wraps at
//     midnight. These operations never fail.
package temporal

import (
	"errors"
	"math/big"
)

var (
	// ErrField wraps errors caused by an out-of-range or invalid field
	// value.
	ErrField = errors.New("field")

	// ErrUnsupported wraps errors caused by an operation that has no
	// defined meaning for the combination of unit and temporal type.
	ErrUnsupported = errors.New("unsupported")

	// ErrParse wraps errors caused by malformed ISO-8601 input.
	ErrParse = errors.New("parse")
)

// TemporalInstant is implemented by types that identify a single point on
// the epoch timeline, measured from 1970-01-01T00:00:00Z without leap
// seconds.
type TemporalInstant interface {
	// EpochSeconds returns the number of whole seconds from the epoch,
	// floored, so points before the epoch with a fractional second report
	// the earlier second.
	EpochSeconds() int64

	// EpochMilliseconds returns the number of milliseconds from the epoch,
	// saturating at the int64 bounds.
	EpochMilliseconds() int64

	// EpochNanoseconds returns the exact number of nanoseconds from the
	// epoch. The result exceeds the int64 range for points more than
	// roughly 292 years from the epoch, hence the big.Int.
	EpochNanoseconds() *big.Int
}

// DateLike is implemented by types with a calendar-date component.
type DateLike interface {
	Year() int
	Month() Month
	Day() int
	DayOfYear() int
	DayOfWeek() DayOfWeek
}

// TimeLike is implemented by types with a time-of-day component.
type TimeLike interface {
	Hour() int
	Minute() int
	Second() int
	Nanosecond() int
}

// Temporal is the closed set of types accepted by [ChronoUnit.AddTo]:
// Instant, LocalDate, LocalTime, and LocalDateTime.
type Temporal interface {
	addUnit(unit ChronoUnit, amount int64) (Temporal, error)
}

// ZoneResolver resolves a named time zone to its current whole-second UTC
// offset. It is the single collaborator interface through which
// [ZonedDateTime] reaches a time zone database; implementations live in the
// zone subpackage. Historical and daylight-saving transitions are outside
// its contract.
type ZoneResolver interface {
	// Offset returns the current UTC offset of the named zone, or an error
	// if the name is unknown.
	Offset(name string) (ZoneOffset, error)
}
