package temporal

import (
	"math"
	"math/big"
)

// LocalDateTime is a date with a time of day and no time zone, such as
// 2021-03-14T10:15:30. Date-scale arithmetic applies the [LocalDate] rules
// with the time held fixed; time-scale arithmetic carries any overflow
// past midnight into the date, unlike the pure wraparound of [LocalTime].
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// LocalDateTimeOf returns the LocalDateTime for the given calendar and
// clock fields. Returns an error wrapping [ErrField] if any field is out
// of range.
func LocalDateTimeOf(year int, month Month, day, hour, minute, second int) (LocalDateTime, error) {
	date, err := LocalDateOf(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	tod, err := LocalTimeOf(hour, minute, second)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: tod}, nil
}

// MustLocalDateTimeOf is like [LocalDateTimeOf] but panics on invalid
// fields.
func MustLocalDateTimeOf(year int, month Month, day, hour, minute, second int) LocalDateTime {
	dt, err := LocalDateTimeOf(year, month, day, hour, minute, second)
	if err != nil {
		panic(err)
	}
	return dt
}

// LocalDateTimeNow returns the current date-time on the UTC clock.
func LocalDateTimeNow() LocalDateTime {
	return LocalDateTimeNowWithClock(SystemClockUTC())
}

// LocalDateTimeNowWithClock returns the current date-time of the given
// clock.
func LocalDateTimeNowWithClock(c Clock) LocalDateTime {
	return localDateTimeOfEpoch(c.Instant().EpochSeconds(), c.Instant().Nano(), 0)
}

// localDateTimeOfEpoch converts epoch seconds plus a nano-of-second and a
// zone offset into wall-clock fields.
func localDateTimeOfEpoch(epochSeconds int64, nano, offsetSeconds int) LocalDateTime {
	local := epochSeconds + int64(offsetSeconds)
	y, m, d := dateOfEpochDay(floorDiv(local, secondsPerDay))
	secOfDay := floorMod(local, secondsPerDay)
	return LocalDateTime{
		date: LocalDate{year: y, month: m, day: d},
		time: timeOfNanoOfDay(secOfDay*nanosPerSecond + int64(nano)),
	}
}

// ToLocalDate returns the date component.
func (dt LocalDateTime) ToLocalDate() LocalDate { return dt.date }

// ToLocalTime returns the time-of-day component.
func (dt LocalDateTime) ToLocalTime() LocalTime { return dt.time }

// Year returns the proleptic year.
func (dt LocalDateTime) Year() int { return dt.date.year }

// Month returns the month of the year.
func (dt LocalDateTime) Month() Month { return dt.date.month }

// Day returns the day of the month.
func (dt LocalDateTime) Day() int { return dt.date.day }

// DayOfYear returns the 1-based ordinal day of the year.
func (dt LocalDateTime) DayOfYear() int { return dt.date.DayOfYear() }

// DayOfWeek returns the day of the week.
func (dt LocalDateTime) DayOfWeek() DayOfWeek { return dt.date.DayOfWeek() }

// Hour returns the hour of the day, 0-23.
func (dt LocalDateTime) Hour() int { return dt.time.hour }

// Minute returns the minute of the hour, 0-59.
func (dt LocalDateTime) Minute() int { return dt.time.minute }

// Second returns the second of the minute, 0-59.
func (dt LocalDateTime) Second() int { return dt.time.second }

// Nanosecond returns the nanosecond of the second, 0-999,999,999.
func (dt LocalDateTime) Nanosecond() int { return dt.time.nano }

// withDate returns dt with the date replaced and the time held fixed.
func (dt LocalDateTime) withDate(date LocalDate) LocalDateTime {
	return LocalDateTime{date: date, time: dt.time}
}

// plusUnits adds a signed count of fixed-length time units, carrying
// overflow past midnight into the date. The count splits into whole days
// and a sub-day remainder so the nanosecond math stays within int64.
func (dt LocalDateTime) plusUnits(amount, nanosPerUnit int64) LocalDateTime {
	unitsPerDay := nanosPerDay / nanosPerUnit
	days := amount / unitsPerDay
	rem := amount % unitsPerDay
	nod := dt.time.NanoOfDay() + rem*nanosPerUnit
	days += floorDiv(nod, nanosPerDay)
	return LocalDateTime{
		date: dt.date.PlusDays(days),
		time: timeOfNanoOfDay(floorMod(nod, nanosPerDay)),
	}
}

// minusUnits subtracts a signed count of fixed-length time units. The most
// negative count has no int64 negation and splits into two adds instead.
func (dt LocalDateTime) minusUnits(amount, nanosPerUnit int64) LocalDateTime {
	if amount == math.MinInt64 {
		return dt.plusUnits(math.MaxInt64, nanosPerUnit).plusUnits(1, nanosPerUnit)
	}
	return dt.plusUnits(-amount, nanosPerUnit)
}

// PlusDays returns dt plus the given days, holding the time fixed.
func (dt LocalDateTime) PlusDays(days int64) LocalDateTime {
	return dt.withDate(dt.date.PlusDays(days))
}

// MinusDays returns dt minus the given days, holding the time fixed.
func (dt LocalDateTime) MinusDays(days int64) LocalDateTime {
	return dt.withDate(dt.date.MinusDays(days))
}

// PlusWeeks returns dt plus the given weeks, holding the time fixed.
func (dt LocalDateTime) PlusWeeks(weeks int64) LocalDateTime {
	return dt.withDate(dt.date.PlusWeeks(weeks))
}

// MinusWeeks returns dt minus the given weeks, holding the time fixed.
func (dt LocalDateTime) MinusWeeks(weeks int64) LocalDateTime {
	return dt.withDate(dt.date.MinusWeeks(weeks))
}

// PlusMonths returns dt plus the given months under the [LocalDate]
// end-of-month clamping rules, holding the time fixed.
func (dt LocalDateTime) PlusMonths(months int64) LocalDateTime {
	return dt.withDate(dt.date.PlusMonths(months))
}

// MinusMonths returns dt minus the given months.
func (dt LocalDateTime) MinusMonths(months int64) LocalDateTime {
	return dt.withDate(dt.date.MinusMonths(months))
}

// PlusYears returns dt plus the given years under the [LocalDate] Feb 29
// clamping rule, holding the time fixed.
func (dt LocalDateTime) PlusYears(years int64) LocalDateTime {
	return dt.withDate(dt.date.PlusYears(years))
}

// MinusYears returns dt minus the given years.
func (dt LocalDateTime) MinusYears(years int64) LocalDateTime {
	return dt.withDate(dt.date.MinusYears(years))
}

// PlusHours returns dt plus the given hours, carrying across midnight.
func (dt LocalDateTime) PlusHours(hours int64) LocalDateTime {
	return dt.plusUnits(hours, nanosPerHour)
}

// MinusHours returns dt minus the given hours, carrying across midnight.
func (dt LocalDateTime) MinusHours(hours int64) LocalDateTime {
	return dt.minusUnits(hours, nanosPerHour)
}

// PlusMinutes returns dt plus the given minutes, carrying across
// midnight.
func (dt LocalDateTime) PlusMinutes(minutes int64) LocalDateTime {
	return dt.plusUnits(minutes, nanosPerMinute)
}

// MinusMinutes returns dt minus the given minutes, carrying across
// midnight.
func (dt LocalDateTime) MinusMinutes(minutes int64) LocalDateTime {
	return dt.minusUnits(minutes, nanosPerMinute)
}

// PlusSeconds returns dt plus the given seconds, carrying across
// midnight.
func (dt LocalDateTime) PlusSeconds(seconds int64) LocalDateTime {
	return dt.plusUnits(seconds, nanosPerSecond)
}

// MinusSeconds returns dt minus the given seconds, carrying across
// midnight.
func (dt LocalDateTime) MinusSeconds(seconds int64) LocalDateTime {
	return dt.minusUnits(seconds, nanosPerSecond)
}

// PlusMillis returns dt plus the given milliseconds, carrying across
// midnight.
func (dt LocalDateTime) PlusMillis(millis int64) LocalDateTime {
	return dt.plusUnits(millis, nanosPerMilli)
}

// MinusMillis returns dt minus the given milliseconds, carrying across
// midnight.
func (dt LocalDateTime) MinusMillis(millis int64) LocalDateTime {
	return dt.minusUnits(millis, nanosPerMilli)
}

// PlusNanos returns dt plus the given nanoseconds, carrying across
// midnight.
func (dt LocalDateTime) PlusNanos(nanos int64) LocalDateTime {
	return dt.plusUnits(nanos, 1)
}

// MinusNanos returns dt minus the given nanoseconds, carrying across
// midnight.
func (dt LocalDateTime) MinusNanos(nanos int64) LocalDateTime {
	return dt.minusUnits(nanos, 1)
}

// PlusDuration returns dt plus the exact duration d, carrying across
// midnight.
func (dt LocalDateTime) PlusDuration(d Duration) LocalDateTime {
	return dt.plusUnits(d.secs, nanosPerSecond).plusUnits(int64(d.nanos), 1)
}

// MinusDuration returns dt minus the exact duration d.
func (dt LocalDateTime) MinusDuration(d Duration) LocalDateTime {
	return dt.minusUnits(d.secs, nanosPerSecond).plusUnits(int64(-d.nanos), 1)
}

// Sub returns the exact duration from other to dt, negative when dt is
// earlier, saturating at the [Duration] bounds.
func (dt LocalDateTime) Sub(other LocalDateTime) Duration {
	return DurationBetween(other, dt)
}

// WithYear returns dt with the year replaced, rejecting invalid results
// with an error wrapping [ErrField].
func (dt LocalDateTime) WithYear(year int) (LocalDateTime, error) {
	date, err := dt.date.WithYear(year)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.withDate(date), nil
}

// WithMonth returns dt with the month replaced, rejecting invalid results
// with an error wrapping [ErrField].
func (dt LocalDateTime) WithMonth(month Month) (LocalDateTime, error) {
	date, err := dt.date.WithMonth(month)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.withDate(date), nil
}

// WithDayOfMonth returns dt with the day-of-month replaced, rejecting
// invalid results with an error wrapping [ErrField].
func (dt LocalDateTime) WithDayOfMonth(day int) (LocalDateTime, error) {
	date, err := dt.date.WithDayOfMonth(day)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.withDate(date), nil
}

// WithDayOfYear returns dt with the date replaced by the ordinal day of
// the same year, rejecting invalid results with an error wrapping
// [ErrField].
func (dt LocalDateTime) WithDayOfYear(dayOfYear int) (LocalDateTime, error) {
	date, err := dt.date.WithDayOfYear(dayOfYear)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.withDate(date), nil
}

// WithHour returns dt with the hour replaced, rejecting out-of-range
// values with an error wrapping [ErrField].
func (dt LocalDateTime) WithHour(hour int) (LocalDateTime, error) {
	tod, err := dt.time.WithHour(hour)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: dt.date, time: tod}, nil
}

// WithMinute returns dt with the minute replaced, rejecting out-of-range
// values with an error wrapping [ErrField].
func (dt LocalDateTime) WithMinute(minute int) (LocalDateTime, error) {
	tod, err := dt.time.WithMinute(minute)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: dt.date, time: tod}, nil
}

// WithSecond returns dt with the second replaced, rejecting out-of-range
// values with an error wrapping [ErrField].
func (dt LocalDateTime) WithSecond(second int) (LocalDateTime, error) {
	tod, err := dt.time.WithSecond(second)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: dt.date, time: tod}, nil
}

// WithNanosecond returns dt with the nanosecond replaced, rejecting
// out-of-range values with an error wrapping [ErrField].
func (dt LocalDateTime) WithNanosecond(nano int) (LocalDateTime, error) {
	tod, err := dt.time.WithNanosecond(nano)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: dt.date, time: tod}, nil
}

// FirstDayOfMonth returns dt moved to the first day of its month,
// preserving the time.
func (dt LocalDateTime) FirstDayOfMonth() LocalDateTime {
	return dt.withDate(dt.date.FirstDayOfMonth())
}

// LastDayOfMonth returns dt moved to the last day of its month, preserving
// the time.
func (dt LocalDateTime) LastDayOfMonth() LocalDateTime {
	return dt.withDate(dt.date.LastDayOfMonth())
}

// FirstDayOfNextMonth returns dt moved to the first day of the following
// month, preserving the time.
func (dt LocalDateTime) FirstDayOfNextMonth() LocalDateTime {
	return dt.withDate(dt.date.FirstDayOfNextMonth())
}

// FirstDayOfYear returns dt moved to January 1, preserving the time.
func (dt LocalDateTime) FirstDayOfYear() LocalDateTime {
	return dt.withDate(dt.date.FirstDayOfYear())
}

// LastDayOfYear returns dt moved to December 31, preserving the time.
func (dt LocalDateTime) LastDayOfYear() LocalDateTime {
	return dt.withDate(dt.date.LastDayOfYear())
}

// FirstDayOfNextYear returns dt moved to January 1 of the following year,
// preserving the time.
func (dt LocalDateTime) FirstDayOfNextYear() LocalDateTime {
	return dt.withDate(dt.date.FirstDayOfNextYear())
}

// FirstInMonth returns dt moved to the first occurrence of dow in its
// month, preserving the time.
func (dt LocalDateTime) FirstInMonth(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.FirstInMonth(dow))
}

// LastInMonth returns dt moved to the last occurrence of dow in its month,
// preserving the time.
func (dt LocalDateTime) LastInMonth(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.LastInMonth(dow))
}

// Next returns dt moved forward to the next occurrence of dow, at least
// one day ahead, preserving the time.
func (dt LocalDateTime) Next(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.Next(dow))
}

// NextOrSame returns dt moved forward to dow, staying put if already
// there, preserving the time.
func (dt LocalDateTime) NextOrSame(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.NextOrSame(dow))
}

// Previous returns dt moved backward to the previous occurrence of dow, at
// least one day behind, preserving the time.
func (dt LocalDateTime) Previous(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.Previous(dow))
}

// PreviousOrSame returns dt moved backward to dow, staying put if already
// there, preserving the time.
func (dt LocalDateTime) PreviousOrSame(dow DayOfWeek) LocalDateTime {
	return dt.withDate(dt.date.PreviousOrSame(dow))
}

// AtOffset attaches a fixed UTC offset to dt.
func (dt LocalDateTime) AtOffset(offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dt, offset: offset}
}

// AtZone attaches a named time zone to dt. The zone stays a name; it
// resolves to a concrete offset only through
// [ZonedDateTime.ToOffsetDateTime].
func (dt LocalDateTime) AtZone(zone ZoneID) ZonedDateTime {
	return ZonedDateTime{dateTime: dt, zone: zone}
}

// EpochSeconds implements [TemporalInstant], interpreting dt as a UTC
// wall-clock reading.
func (dt LocalDateTime) EpochSeconds() int64 {
	return dt.date.EpochDay()*secondsPerDay + int64(dt.time.SecondOfDay())
}

// EpochMilliseconds implements [TemporalInstant], interpreting dt as UTC.
func (dt LocalDateTime) EpochMilliseconds() int64 {
	return clampToInt64(new(big.Int).Quo(dt.EpochNanoseconds(), big.NewInt(nanosPerMilli)))
}

// EpochNanoseconds implements [TemporalInstant], interpreting dt as UTC.
func (dt LocalDateTime) EpochNanoseconds() *big.Int {
	n := new(big.Int).Mul(big.NewInt(dt.EpochSeconds()), bigNanosPerSecond)
	return n.Add(n, big.NewInt(int64(dt.time.nano)))
}

// Compare returns -1, 0, or +1 as dt is before, equal to, or after other.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// IsBefore reports whether dt is strictly before other.
func (dt LocalDateTime) IsBefore(other LocalDateTime) bool { return dt.Compare(other) < 0 }

// IsAfter reports whether dt is strictly after other.
func (dt LocalDateTime) IsAfter(other LocalDateTime) bool { return dt.Compare(other) > 0 }

// IsOnOrBefore reports whether dt is at or before other.
func (dt LocalDateTime) IsOnOrBefore(other LocalDateTime) bool { return dt.Compare(other) <= 0 }

// IsOnOrAfter reports whether dt is at or after other.
func (dt LocalDateTime) IsOnOrAfter(other LocalDateTime) bool { return dt.Compare(other) >= 0 }

// String returns the ISO-8601 representation of dt, such as
// "2021-03-14T10:15:30".
func (dt LocalDateTime) String() string {
	b := appendDate(make([]byte, 0, 30), dt)
	b = append(b, 'T')
	return string(appendTime(b, dt))
}

// MarshalJSON implements the json.Marshaler interface. The date-time is a
// quoted string in the ISO-8601 format.
func (dt LocalDateTime) MarshalJSON() ([]byte, error) {
	b := append(make([]byte, 0, 32), '"')
	b = appendDate(b, dt)
	b = append(b, 'T')
	b = appendTime(b, dt)
	return append(b, '"'), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The date-time
// must be a quoted string in the ISO-8601 format.
func (dt *LocalDateTime) UnmarshalJSON(data []byte) error {
	parsed, err := ParseLocalDateTime(unquote(data))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}
