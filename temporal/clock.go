package temporal

// Clock supplies the current instant and a zone tag to the Now*
// functions. Injecting a [FixedClock] makes time-dependent code
// deterministic in tests; the system clocks read the real wall clock on
// every call, with no ordering guarantees beyond the platform's.
type Clock interface {
	// Instant returns the clock's current point on the epoch timeline.
	Instant() Instant

	// Zone returns the zone tag the clock was built with.
	Zone() ZoneID
}

type systemClock struct {
	zone ZoneID
}

// SystemClock returns a Clock reading the system wall clock, tagged with
// zone.
func SystemClock(zone ZoneID) Clock { return systemClock{zone: zone} }

// SystemClockUTC returns a Clock reading the system wall clock, tagged
// with UTC.
func SystemClockUTC() Clock { return systemClock{zone: ZoneUTC} }

func (c systemClock) Instant() Instant { return InstantNow() }
func (c systemClock) Zone() ZoneID     { return c.zone }

type fixedClock struct {
	instant Instant
	zone    ZoneID
}

// FixedClock returns a Clock frozen at the given instant, tagged with
// zone.
func FixedClock(instant Instant, zone ZoneID) Clock {
	return fixedClock{instant: instant, zone: zone}
}

func (c fixedClock) Instant() Instant { return c.instant }
func (c fixedClock) Zone() ZoneID     { return c.zone }

// ClockMillis returns the clock's current epoch milliseconds, clamped to
// the int64 range.
func ClockMillis(c Clock) int64 { return c.Instant().EpochMilliseconds() }
