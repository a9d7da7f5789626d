package temporal

// ZonedDateTime is a date-time tagged with a named time zone, such as
// 2021-03-14T10:15:30 in Europe/Madrid. The zone stays a name: it resolves
// to a concrete offset only through [ZonedDateTime.ToOffsetDateTime] and
// an injected [ZoneResolver], and daylight-saving transitions are not
// modeled. Arithmetic operates on the local date-time and carries the zone
// tag unchanged.
type ZonedDateTime struct {
	dateTime LocalDateTime
	zone     ZoneID
}

// ZonedDateTimeOf tags a local date-time with a named zone.
func ZonedDateTimeOf(dt LocalDateTime, zone ZoneID) ZonedDateTime {
	return ZonedDateTime{dateTime: dt, zone: zone}
}

// ZonedDateTimeNowUTC returns the current date-time tagged with the UTC
// zone.
func ZonedDateTimeNowUTC() ZonedDateTime {
	return ZonedDateTimeNowWithClock(SystemClockUTC())
}

// ZonedDateTimeNowWithClock returns the current date-time of the given
// clock, tagged with the clock's zone. The wall-clock reading is taken in
// UTC; the zone is a tag, not an applied offset.
func ZonedDateTimeNowWithClock(c Clock) ZonedDateTime {
	i := c.Instant()
	return ZonedDateTime{
		dateTime: localDateTimeOfEpoch(i.EpochSeconds(), i.Nano(), 0),
		zone:     c.Zone(),
	}
}

// ToLocalDateTime returns the local date-time component.
func (z ZonedDateTime) ToLocalDateTime() LocalDateTime { return z.dateTime }

// ToLocalDate returns the date component.
func (z ZonedDateTime) ToLocalDate() LocalDate { return z.dateTime.date }

// ToLocalTime returns the time-of-day component.
func (z ZonedDateTime) ToLocalTime() LocalTime { return z.dateTime.time }

// Zone returns the zone tag.
func (z ZonedDateTime) Zone() ZoneID { return z.zone }

// ToOffsetDateTime resolves the zone name to its current offset through
// resolver and attaches it to the local date-time. Returns the resolver's
// error for an unknown zone.
func (z ZonedDateTime) ToOffsetDateTime(resolver ZoneResolver) (OffsetDateTime, error) {
	offset, err := resolver.Offset(string(z.zone))
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: z.dateTime, offset: offset}, nil
}

// withLocal returns z with the local date-time replaced and the zone
// kept.
func (z ZonedDateTime) withLocal(dt LocalDateTime) ZonedDateTime {
	return ZonedDateTime{dateTime: dt, zone: z.zone}
}

// PlusDays returns z plus the given days, holding the time and zone
// fixed.
func (z ZonedDateTime) PlusDays(days int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusDays(days))
}

// MinusDays returns z minus the given days.
func (z ZonedDateTime) MinusDays(days int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusDays(days))
}

// PlusWeeks returns z plus the given weeks.
func (z ZonedDateTime) PlusWeeks(weeks int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusWeeks(weeks))
}

// MinusWeeks returns z minus the given weeks.
func (z ZonedDateTime) MinusWeeks(weeks int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusWeeks(weeks))
}

// PlusMonths returns z plus the given months under the end-of-month
// clamping rules.
func (z ZonedDateTime) PlusMonths(months int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusMonths(months))
}

// MinusMonths returns z minus the given months.
func (z ZonedDateTime) MinusMonths(months int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusMonths(months))
}

// PlusYears returns z plus the given years under the Feb 29 clamping
// rule.
func (z ZonedDateTime) PlusYears(years int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusYears(years))
}

// MinusYears returns z minus the given years.
func (z ZonedDateTime) MinusYears(years int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusYears(years))
}

// PlusHours returns z plus the given hours, carrying across midnight. The
// zone's daylight-saving rules, if any, play no part.
func (z ZonedDateTime) PlusHours(hours int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusHours(hours))
}

// MinusHours returns z minus the given hours.
func (z ZonedDateTime) MinusHours(hours int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusHours(hours))
}

// PlusMinutes returns z plus the given minutes, carrying across midnight.
func (z ZonedDateTime) PlusMinutes(minutes int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusMinutes(minutes))
}

// MinusMinutes returns z minus the given minutes.
func (z ZonedDateTime) MinusMinutes(minutes int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusMinutes(minutes))
}

// PlusSeconds returns z plus the given seconds, carrying across midnight.
func (z ZonedDateTime) PlusSeconds(seconds int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusSeconds(seconds))
}

// MinusSeconds returns z minus the given seconds.
func (z ZonedDateTime) MinusSeconds(seconds int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusSeconds(seconds))
}

// PlusNanos returns z plus the given nanoseconds, carrying across
// midnight.
func (z ZonedDateTime) PlusNanos(nanos int64) ZonedDateTime {
	return z.withLocal(z.dateTime.PlusNanos(nanos))
}

// MinusNanos returns z minus the given nanoseconds.
func (z ZonedDateTime) MinusNanos(nanos int64) ZonedDateTime {
	return z.withLocal(z.dateTime.MinusNanos(nanos))
}

// Compare orders two values by local date-time first and zone name
// second. Zones are not resolved, so this is a structural order, not a
// timeline order.
func (z ZonedDateTime) Compare(other ZonedDateTime) int {
	if c := z.dateTime.Compare(other.dateTime); c != 0 {
		return c
	}
	switch {
	case z.zone < other.zone:
		return -1
	case z.zone > other.zone:
		return 1
	default:
		return 0
	}
}

// String returns the local ISO-8601 date-time followed by the bracketed
// zone name, such as "2021-03-14T10:15:30[Europe/Madrid]".
func (z ZonedDateTime) String() string {
	b := appendDate(make([]byte, 0, 48), z.dateTime)
	b = append(b, 'T')
	b = appendTime(b, z.dateTime)
	b = append(b, '[')
	b = append(b, z.zone...)
	return string(append(b, ']'))
}
