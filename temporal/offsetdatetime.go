package temporal

import "math/big"

// OffsetDateTime is a date-time with a fixed UTC offset, such as
// 2021-03-14T10:15:30+01:00. Arithmetic operates on the local date-time
// under the [LocalDateTime] rules and reattaches the offset unchanged;
// the offset itself is never recomputed.
type OffsetDateTime struct {
	dateTime LocalDateTime
	offset   ZoneOffset
}

// OffsetDateTimeOf combines a local date-time with a fixed offset.
func OffsetDateTimeOf(dt LocalDateTime, offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dt, offset: offset}
}

// OffsetDateTimeNowUTC returns the current date-time at offset zero.
func OffsetDateTimeNowUTC() OffsetDateTime {
	return OffsetDateTimeNowWithClock(SystemClockUTC())
}

// OffsetDateTimeNowWithClock returns the current date-time of the given
// clock at offset zero.
func OffsetDateTimeNowWithClock(c Clock) OffsetDateTime {
	i := c.Instant()
	return OffsetDateTime{dateTime: localDateTimeOfEpoch(i.EpochSeconds(), i.Nano(), 0)}
}

// ToLocalDateTime returns the local date-time component.
func (o OffsetDateTime) ToLocalDateTime() LocalDateTime { return o.dateTime }

// ToLocalDate returns the date component.
func (o OffsetDateTime) ToLocalDate() LocalDate { return o.dateTime.date }

// ToLocalTime returns the time-of-day component.
func (o OffsetDateTime) ToLocalTime() LocalTime { return o.dateTime.time }

// Offset returns the fixed UTC offset.
func (o OffsetDateTime) Offset() ZoneOffset { return o.offset }

// Year returns the proleptic year.
func (o OffsetDateTime) Year() int { return o.dateTime.Year() }

// Month returns the month of the year.
func (o OffsetDateTime) Month() Month { return o.dateTime.Month() }

// Day returns the day of the month.
func (o OffsetDateTime) Day() int { return o.dateTime.Day() }

// DayOfYear returns the 1-based ordinal day of the year.
func (o OffsetDateTime) DayOfYear() int { return o.dateTime.DayOfYear() }

// DayOfWeek returns the day of the week.
func (o OffsetDateTime) DayOfWeek() DayOfWeek { return o.dateTime.DayOfWeek() }

// Hour returns the hour of the day, 0-23.
func (o OffsetDateTime) Hour() int { return o.dateTime.Hour() }

// Minute returns the minute of the hour, 0-59.
func (o OffsetDateTime) Minute() int { return o.dateTime.Minute() }

// Second returns the second of the minute, 0-59.
func (o OffsetDateTime) Second() int { return o.dateTime.Second() }

// Nanosecond returns the nanosecond of the second, 0-999,999,999.
func (o OffsetDateTime) Nanosecond() int { return o.dateTime.Nanosecond() }

// withLocal returns o with the local date-time replaced and the offset
// kept.
func (o OffsetDateTime) withLocal(dt LocalDateTime) OffsetDateTime {
	return OffsetDateTime{dateTime: dt, offset: o.offset}
}

// PlusDays returns o plus the given days, holding the time and offset
// fixed.
func (o OffsetDateTime) PlusDays(days int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusDays(days))
}

// MinusDays returns o minus the given days.
func (o OffsetDateTime) MinusDays(days int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusDays(days))
}

// PlusWeeks returns o plus the given weeks.
func (o OffsetDateTime) PlusWeeks(weeks int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusWeeks(weeks))
}

// MinusWeeks returns o minus the given weeks.
func (o OffsetDateTime) MinusWeeks(weeks int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusWeeks(weeks))
}

// PlusMonths returns o plus the given months under the end-of-month
// clamping rules.
func (o OffsetDateTime) PlusMonths(months int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusMonths(months))
}

// MinusMonths returns o minus the given months.
func (o OffsetDateTime) MinusMonths(months int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusMonths(months))
}

// PlusYears returns o plus the given years under the Feb 29 clamping
// rule.
func (o OffsetDateTime) PlusYears(years int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusYears(years))
}

// MinusYears returns o minus the given years.
func (o OffsetDateTime) MinusYears(years int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusYears(years))
}

// PlusHours returns o plus the given hours, carrying across midnight.
func (o OffsetDateTime) PlusHours(hours int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusHours(hours))
}

// MinusHours returns o minus the given hours.
func (o OffsetDateTime) MinusHours(hours int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusHours(hours))
}

// PlusMinutes returns o plus the given minutes, carrying across midnight.
func (o OffsetDateTime) PlusMinutes(minutes int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusMinutes(minutes))
}

// MinusMinutes returns o minus the given minutes.
func (o OffsetDateTime) MinusMinutes(minutes int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusMinutes(minutes))
}

// PlusSeconds returns o plus the given seconds, carrying across midnight.
func (o OffsetDateTime) PlusSeconds(seconds int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusSeconds(seconds))
}

// MinusSeconds returns o minus the given seconds.
func (o OffsetDateTime) MinusSeconds(seconds int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusSeconds(seconds))
}

// PlusNanos returns o plus the given nanoseconds, carrying across
// midnight.
func (o OffsetDateTime) PlusNanos(nanos int64) OffsetDateTime {
	return o.withLocal(o.dateTime.PlusNanos(nanos))
}

// MinusNanos returns o minus the given nanoseconds.
func (o OffsetDateTime) MinusNanos(nanos int64) OffsetDateTime {
	return o.withLocal(o.dateTime.MinusNanos(nanos))
}

// ToInstant returns the point on the epoch timeline that o identifies.
func (o OffsetDateTime) ToInstant() Instant {
	return Instant{
		secs:  o.EpochSeconds(),
		nanos: int32(o.dateTime.time.nano),
	}
}

// EpochSeconds implements [TemporalInstant]: the local reading shifted by
// the offset.
func (o OffsetDateTime) EpochSeconds() int64 {
	return o.dateTime.EpochSeconds() - int64(o.offset.totalSeconds)
}

// EpochMilliseconds implements [TemporalInstant].
func (o OffsetDateTime) EpochMilliseconds() int64 {
	return clampToInt64(new(big.Int).Quo(o.EpochNanoseconds(), big.NewInt(nanosPerMilli)))
}

// EpochNanoseconds implements [TemporalInstant].
func (o OffsetDateTime) EpochNanoseconds() *big.Int {
	n := new(big.Int).Mul(big.NewInt(o.EpochSeconds()), bigNanosPerSecond)
	return n.Add(n, big.NewInt(int64(o.dateTime.time.nano)))
}

// Compare orders two values by their position on the epoch timeline, so
// readings at different offsets compare by the instant they identify.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	return o.EpochNanoseconds().Cmp(other.EpochNanoseconds())
}

// IsBefore reports whether o identifies an earlier instant than other.
func (o OffsetDateTime) IsBefore(other OffsetDateTime) bool { return o.Compare(other) < 0 }

// IsAfter reports whether o identifies a later instant than other.
func (o OffsetDateTime) IsAfter(other OffsetDateTime) bool { return o.Compare(other) > 0 }

// IsOnOrBefore reports whether o identifies an instant at or before
// other.
func (o OffsetDateTime) IsOnOrBefore(other OffsetDateTime) bool { return o.Compare(other) <= 0 }

// IsOnOrAfter reports whether o identifies an instant at or after other.
func (o OffsetDateTime) IsOnOrAfter(other OffsetDateTime) bool { return o.Compare(other) >= 0 }

// String returns the ISO-8601 representation of o, such as
// "2021-03-14T10:15:30+01:00".
func (o OffsetDateTime) String() string {
	b := appendDate(make([]byte, 0, 38), o)
	b = append(b, 'T')
	b = appendTime(b, o)
	return string(appendOffset(b, o.offset))
}

// MarshalJSON implements the json.Marshaler interface. The date-time is a
// quoted string in the ISO-8601 format with offset.
func (o OffsetDateTime) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 40), '"')
	b = appendDate(b, o)
	b = append(b, 'T')
	b = appendTime(b, o)
	b = appendOffset(b, o.offset)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date-time
// must be a quoted string in the ISO-8601 format with offset.
func (o *OffsetDateTime) UnmarshalJSON(data []byte) error {
	parsed, err := ParseOffsetDateTime(unquote(data))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
