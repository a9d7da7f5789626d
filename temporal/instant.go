package temporal

import (
	"math"
	"math/big"
	"time"
)

// Instant is a point on the epoch timeline with nanosecond resolution,
// held as whole seconds from 1970-01-01T00:00:00Z plus a non-negative
// nano-of-second, so points before the epoch floor to the earlier second.
// Arithmetic saturates at the representable bounds.
type Instant struct {
	secs  int64
	nanos int32
}

// EpochInstant is the epoch itself, 1970-01-01T00:00:00Z.
var EpochInstant = Instant{}

var (
	maxInstantNanos = new(big.Int).Add(
		new(big.Int).Mul(big.NewInt(math.MaxInt64), bigNanosPerSecond),
		big.NewInt(nanosPerSecond-1),
	)
	minInstantNanos = new(big.Int).Mul(big.NewInt(math.MinInt64), bigNanosPerSecond)
)

// InstantNow reads the system wall clock.
func InstantNow() Instant {
	now := time.Now()
	return Instant{secs: now.Unix(), nanos: int32(now.Nanosecond())}
}

// InstantOfEpochSeconds returns the Instant the given whole seconds from
// the epoch.
func InstantOfEpochSeconds(seconds int64) Instant {
	return Instant{secs: seconds}
}

// InstantOfEpochSecondsNano returns the Instant at the given second plus a
// nanosecond adjustment, which may be any int64 and is normalized into the
// second, saturating at the bounds.
func InstantOfEpochSecondsNano(seconds, nanoAdjustment int64) Instant {
	n := new(big.Int).Mul(big.NewInt(seconds), bigNanosPerSecond)
	n.Add(n, big.NewInt(nanoAdjustment))
	return instantOfBigNanos(n)
}

// InstantOfEpochMillis returns the Instant the given milliseconds from the
// epoch.
func InstantOfEpochMillis(millis int64) Instant {
	return Instant{
		secs:  floorDiv(millis, millisPerSecond),
		nanos: int32(floorMod(millis, millisPerSecond)) * nanosPerMilli,
	}
}

// instantOfBigNanos converts an exact epoch-nanosecond count into an
// Instant, clamping to the representable bounds.
func instantOfBigNanos(total *big.Int) Instant {
	if total.Cmp(maxInstantNanos) > 0 {
		total = maxInstantNanos
	} else if total.Cmp(minInstantNanos) < 0 {
		total = minInstantNanos
	}
	secs, nanos := new(big.Int).QuoRem(total, bigNanosPerSecond, new(big.Int))
	s, n := secs.Int64(), nanos.Int64()
	if n < 0 {
		s--
		n += nanosPerSecond
	}
	return Instant{secs: s, nanos: int32(n)}
}

// EpochSeconds implements [TemporalInstant]: whole seconds from the
// epoch, floored.
func (i Instant) EpochSeconds() int64 { return i.secs }

// Nano returns the nano-of-second adjustment, always in
// [0, 999,999,999].
func (i Instant) Nano() int { return int(i.nanos) }

// EpochMilliseconds implements [TemporalInstant], clamped to the int64
// range.
func (i Instant) EpochMilliseconds() int64 {
	return clampToInt64(new(big.Int).Quo(i.EpochNanoseconds(), big.NewInt(nanosPerMilli)))
}

// EpochNanoseconds implements [TemporalInstant].
func (i Instant) EpochNanoseconds() *big.Int {
	n := new(big.Int).Mul(big.NewInt(i.secs), bigNanosPerSecond)
	return n.Add(n, big.NewInt(int64(i.nanos)))
}

// plusNanosBig shifts i by an exact nanosecond delta, saturating at the
// bounds.
func (i Instant) plusNanosBig(delta *big.Int) Instant {
	return instantOfBigNanos(new(big.Int).Add(i.EpochNanoseconds(), delta))
}

// PlusSeconds returns i plus the given seconds, saturating at the bounds.
func (i Instant) PlusSeconds(seconds int64) Instant {
	return i.plusNanosBig(new(big.Int).Mul(big.NewInt(seconds), bigNanosPerSecond))
}

// MinusSeconds returns i minus the given seconds, saturating at the
// bounds.
func (i Instant) MinusSeconds(seconds int64) Instant {
	return i.plusNanosBig(new(big.Int).Mul(big.NewInt(seconds), big.NewInt(-nanosPerSecond)))
}

// PlusMillis returns i plus the given milliseconds, saturating at the
// bounds.
func (i Instant) PlusMillis(millis int64) Instant {
	return i.plusNanosBig(new(big.Int).Mul(big.NewInt(millis), big.NewInt(nanosPerMilli)))
}

// MinusMillis returns i minus the given milliseconds, saturating at the
// bounds.
func (i Instant) MinusMillis(millis int64) Instant {
	return i.plusNanosBig(new(big.Int).Mul(big.NewInt(millis), big.NewInt(-nanosPerMilli)))
}

// PlusNanos returns i plus the given nanoseconds, saturating at the
// bounds.
func (i Instant) PlusNanos(nanos int64) Instant {
	return i.plusNanosBig(big.NewInt(nanos))
}

// MinusNanos returns i minus the given nanoseconds, saturating at the
// bounds.
func (i Instant) MinusNanos(nanos int64) Instant {
	return i.plusNanosBig(new(big.Int).Neg(big.NewInt(nanos)))
}

// PlusDuration returns i shifted by the exact duration d, saturating at
// the bounds.
func (i Instant) PlusDuration(d Duration) Instant {
	return i.plusNanosBig(d.bigNanos())
}

// MinusDuration returns i shifted back by the exact duration d.
func (i Instant) MinusDuration(d Duration) Instant {
	return i.plusNanosBig(new(big.Int).Neg(d.bigNanos()))
}

// AtOffset returns the wall-clock reading of i at the given fixed offset.
func (i Instant) AtOffset(offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{
		dateTime: localDateTimeOfEpoch(i.secs, int(i.nanos), offset.totalSeconds),
		offset:   offset,
	}
}

// AtZone returns the UTC wall-clock reading of i tagged with the given
// zone name. The zone is a tag; resolving it to an offset is the
// [ZoneResolver]'s job.
func (i Instant) AtZone(zone ZoneID) ZonedDateTime {
	return ZonedDateTime{
		dateTime: localDateTimeOfEpoch(i.secs, int(i.nanos), 0),
		zone:     zone,
	}
}

// Compare returns -1, 0, or +1 as i is before, equal to, or after other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.secs != other.secs:
		if i.secs < other.secs {
			return -1
		}
		return 1
	case i.nanos != other.nanos:
		if i.nanos < other.nanos {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// IsBefore reports whether i is strictly before other.
func (i Instant) IsBefore(other Instant) bool { return i.Compare(other) < 0 }

// IsAfter reports whether i is strictly after other.
func (i Instant) IsAfter(other Instant) bool { return i.Compare(other) > 0 }

// IsOnOrBefore reports whether i is at or before other.
func (i Instant) IsOnOrBefore(other Instant) bool { return i.Compare(other) <= 0 }

// IsOnOrAfter reports whether i is at or after other.
func (i Instant) IsOnOrAfter(other Instant) bool { return i.Compare(other) >= 0 }

// String returns the ISO-8601 UTC representation of i, such as
// "1970-01-01T00:01:01Z".
func (i Instant) String() string {
	dt := localDateTimeOfEpoch(i.secs, int(i.nanos), 0)
	b := appendDate(make([]byte, 0, 32), dt)
	b = append(b, 'T')
	b = appendTime(b, dt)
	return string(append(b, 'Z'))
}
