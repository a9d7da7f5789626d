package temporal

import "fmt"

// LocalTime is a time of day with nanosecond precision and no date or time
// zone, such as 10:15:30.5. Arithmetic wraps silently at the 24-hour
// boundary and never fails and never carries into a date; composite types
// that need the day carry use [LocalDateTime] instead.
type LocalTime struct {
	hour   int
	minute int
	second int
	nano   int
}

// Midnight is the start of the day, 00:00.
var Midnight = LocalTime{}

// LocalTimeOf returns the LocalTime for the given hour, minute, and
// second. Returns an error wrapping [ErrField] if any field is out of
// range.
func LocalTimeOf(hour, minute, second int) (LocalTime, error) {
	return LocalTimeOfNano(hour, minute, second, 0)
}

// LocalTimeOfNano returns the LocalTime for the given hour, minute,
// second, and nanosecond. Returns an error wrapping [ErrField] if any
// field is out of range.
func LocalTimeOfNano(hour, minute, second, nano int) (LocalTime, error) {
	switch {
	case hour < 0 || hour > 23:
		return LocalTime{}, fmt.Errorf("%w: hour %d out of range 0-23", ErrField, hour)
	case minute < 0 || minute > 59:
		return LocalTime{}, fmt.Errorf("%w: minute %d out of range 0-59", ErrField, minute)
	case second < 0 || second > 59:
		return LocalTime{}, fmt.Errorf("%w: second %d out of range 0-59", ErrField, second)
	case nano < 0 || nano > nanosPerSecond-1:
		return LocalTime{}, fmt.Errorf("%w: nanosecond %d out of range 0-999999999", ErrField, nano)
	}
	return LocalTime{hour: hour, minute: minute, second: second, nano: nano}, nil
}

// MustLocalTimeOf is like [LocalTimeOfNano] but panics on invalid fields.
func MustLocalTimeOf(hour, minute, second, nano int) LocalTime {
	t, err := LocalTimeOfNano(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// LocalTimeOfNanoOfDay returns the LocalTime at the given nanosecond of
// the day. Returns an error wrapping [ErrField] outside [0, 86400e9).
func LocalTimeOfNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if nanoOfDay < 0 || nanoOfDay >= nanosPerDay {
		return LocalTime{}, fmt.Errorf("%w: nano-of-day %d out of range 0-%d", ErrField, nanoOfDay, int64(nanosPerDay)-1)
	}
	return timeOfNanoOfDay(nanoOfDay), nil
}

// LocalTimeNow returns the current time of day on the UTC clock.
func LocalTimeNow() LocalTime {
	return LocalTimeNowWithClock(SystemClockUTC())
}

// LocalTimeNowWithClock returns the current time of day of the given
// clock.
func LocalTimeNowWithClock(c Clock) LocalTime {
	i := c.Instant()
	secOfDay := floorMod(i.EpochSeconds(), secondsPerDay)
	return timeOfNanoOfDay(secOfDay*nanosPerSecond + int64(i.Nano()))
}

// timeOfNanoOfDay decomposes a nano-of-day in [0, 86400e9) into fields.
func timeOfNanoOfDay(n int64) LocalTime {
	return LocalTime{
		hour:   int(n / nanosPerHour),
		minute: int(n % nanosPerHour / nanosPerMinute),
		second: int(n % nanosPerMinute / nanosPerSecond),
		nano:   int(n % nanosPerSecond),
	}
}

// Hour returns the hour of the day, 0-23.
func (t LocalTime) Hour() int { return t.hour }

// Minute returns the minute of the hour, 0-59.
func (t LocalTime) Minute() int { return t.minute }

// Second returns the second of the minute, 0-59.
func (t LocalTime) Second() int { return t.second }

// Nanosecond returns the nanosecond of the second, 0-999,999,999.
func (t LocalTime) Nanosecond() int { return t.nano }

// SecondOfDay returns the number of whole seconds elapsed since midnight.
func (t LocalTime) SecondOfDay() int {
	return (t.hour*60+t.minute)*60 + t.second
}

// NanoOfDay returns the number of nanoseconds elapsed since midnight.
func (t LocalTime) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*nanosPerSecond + int64(t.nano)
}

// plusNanoOfDay adds a signed nanosecond delta, wrapping modulo the day
// length with a Euclidean remainder. The delta is reduced before the add
// so the sum cannot overflow.
func (t LocalTime) plusNanoOfDay(delta int64) LocalTime {
	return timeOfNanoOfDay(floorMod(t.NanoOfDay()+floorMod(delta, nanosPerDay), nanosPerDay))
}

// PlusHours returns t plus the given hours, wrapping at midnight.
func (t LocalTime) PlusHours(hours int64) LocalTime {
	return t.plusNanoOfDay(floorMod(hours, 24) * nanosPerHour)
}

// MinusHours returns t minus the given hours, wrapping at midnight. The
// amount reduces modulo the day before negation, so even the most
// negative count wraps the right way.
func (t LocalTime) MinusHours(hours int64) LocalTime {
	return t.plusNanoOfDay(floorMod(hours, 24) * -nanosPerHour)
}

// PlusMinutes returns t plus the given minutes, wrapping at midnight.
func (t LocalTime) PlusMinutes(minutes int64) LocalTime {
	return t.plusNanoOfDay(floorMod(minutes, 24*60) * nanosPerMinute)
}

// MinusMinutes returns t minus the given minutes, wrapping at midnight.
func (t LocalTime) MinusMinutes(minutes int64) LocalTime {
	return t.plusNanoOfDay(floorMod(minutes, 24*60) * -nanosPerMinute)
}

// PlusSeconds returns t plus the given seconds, wrapping at midnight.
func (t LocalTime) PlusSeconds(seconds int64) LocalTime {
	return t.plusNanoOfDay(floorMod(seconds, secondsPerDay) * nanosPerSecond)
}

// MinusSeconds returns t minus the given seconds, wrapping at midnight.
func (t LocalTime) MinusSeconds(seconds int64) LocalTime {
	return t.plusNanoOfDay(floorMod(seconds, secondsPerDay) * -nanosPerSecond)
}

// PlusMillis returns t plus the given milliseconds, wrapping at midnight.
func (t LocalTime) PlusMillis(millis int64) LocalTime {
	return t.plusNanoOfDay(floorMod(millis, secondsPerDay*millisPerSecond) * nanosPerMilli)
}

// MinusMillis returns t minus the given milliseconds, wrapping at
// midnight.
func (t LocalTime) MinusMillis(millis int64) LocalTime {
	return t.plusNanoOfDay(floorMod(millis, secondsPerDay*millisPerSecond) * -nanosPerMilli)
}

// PlusNanos returns t plus the given nanoseconds, wrapping at midnight.
func (t LocalTime) PlusNanos(nanos int64) LocalTime {
	return t.plusNanoOfDay(nanos)
}

// MinusNanos returns t minus the given nanoseconds, wrapping at midnight.
func (t LocalTime) MinusNanos(nanos int64) LocalTime {
	return t.plusNanoOfDay(floorMod(nanos, nanosPerDay) * -1)
}

// WithHour returns t with the hour replaced. An out-of-range hour is an
// error wrapping [ErrField]; setters never wrap.
func (t LocalTime) WithHour(hour int) (LocalTime, error) {
	return LocalTimeOfNano(hour, t.minute, t.second, t.nano)
}

// WithMinute returns t with the minute replaced. An out-of-range minute is
// an error wrapping [ErrField].
func (t LocalTime) WithMinute(minute int) (LocalTime, error) {
	return LocalTimeOfNano(t.hour, minute, t.second, t.nano)
}

// WithSecond returns t with the second replaced. An out-of-range second is
// an error wrapping [ErrField].
func (t LocalTime) WithSecond(second int) (LocalTime, error) {
	return LocalTimeOfNano(t.hour, t.minute, second, t.nano)
}

// WithNanosecond returns t with the nanosecond replaced. An out-of-range
// nanosecond is an error wrapping [ErrField].
func (t LocalTime) WithNanosecond(nano int) (LocalTime, error) {
	return LocalTimeOfNano(t.hour, t.minute, t.second, nano)
}

// AtDate combines t with a calendar date.
func (t LocalTime) AtDate(d LocalDate) LocalDateTime {
	return LocalDateTime{date: d, time: t}
}

// Compare returns -1, 0, or +1 as t is before, equal to, or after other.
func (t LocalTime) Compare(other LocalTime) int {
	switch diff := t.NanoOfDay() - other.NanoOfDay(); {
	case diff < 0:
		return -1
	case diff > 0:
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether t is strictly before other.
func (t LocalTime) IsBefore(other LocalTime) bool { return t.Compare(other) < 0 }

// IsAfter reports whether t is strictly after other.
func (t LocalTime) IsAfter(other LocalTime) bool { return t.Compare(other) > 0 }

// IsOnOrBefore reports whether t is at or before other.
func (t LocalTime) IsOnOrBefore(other LocalTime) bool { return t.Compare(other) <= 0 }

// IsOnOrAfter reports whether t is at or after other.
func (t LocalTime) IsOnOrAfter(other LocalTime) bool { return t.Compare(other) >= 0 }

// String returns the ISO-8601 representation of t, such as
// "10:15:30.5".
func (t LocalTime) String() string {
	return string(appendTime(make([]byte, 0, 18), t))
}

// MarshalJSON implements the json.Marshaler interface. The time is a
// quoted string in the ISO-8601 format.
func (t LocalTime) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 20), '"')
	b = appendTime(b, t)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The time must
// be a quoted string in the ISO-8601 format.
func (t *LocalTime) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLocalTime(unquote(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
