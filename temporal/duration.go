package temporal

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Duration is an exact, time-based amount of time: a signed count of
// seconds and nanoseconds. The two fields always carry the same sign (or
// are zero), so -1.5s is held as (-1s, -500ms) rather than (-2s, +500ms).
//
// Arithmetic saturates: adding past the representable range of int64
// seconds clamps to the boundary instead of wrapping or failing, and the
// boundary is stable under further same-direction addition.
type Duration struct {
	secs  int64
	nanos int32
}

var (
	bigNanosPerSecond = big.NewInt(nanosPerSecond)

	// The saturation bounds, as exact nanosecond counts.
	maxDurationNanos = new(big.Int).Add(
		new(big.Int).Mul(big.NewInt(math.MaxInt64), bigNanosPerSecond),
		big.NewInt(nanosPerSecond-1),
	)
	minDurationNanos = new(big.Int).Sub(
		new(big.Int).Mul(big.NewInt(math.MinInt64), bigNanosPerSecond),
		big.NewInt(nanosPerSecond-1),
	)
)

// bigNanos returns the exact nanosecond count of d.
func (d Duration) bigNanos() *big.Int {
	n := new(big.Int).Mul(big.NewInt(d.secs), bigNanosPerSecond)
	return n.Add(n, big.NewInt(int64(d.nanos)))
}

// durationOfBigNanos converts an exact nanosecond count into a Duration,
// clamping to the saturation bounds.
func durationOfBigNanos(total *big.Int) Duration {
	if total.Cmp(maxDurationNanos) > 0 {
		total = maxDurationNanos
	} else if total.Cmp(minDurationNanos) < 0 {
		total = minDurationNanos
	}
	secs, nanos := new(big.Int).QuoRem(total, bigNanosPerSecond, new(big.Int))
	return Duration{secs: secs.Int64(), nanos: int32(nanos.Int64())}
}

// DurationOfSeconds returns a Duration of the given whole seconds.
func DurationOfSeconds(seconds int64) Duration {
	return Duration{secs: seconds}
}

// DurationOfMillis returns a Duration of the given milliseconds.
func DurationOfMillis(millis int64) Duration {
	return Duration{secs: millis / millisPerSecond, nanos: int32(millis%millisPerSecond) * nanosPerMilli}
}

// DurationOfNanos returns a Duration of the given nanoseconds.
func DurationOfNanos(nanos int64) Duration {
	return Duration{secs: nanos / nanosPerSecond, nanos: int32(nanos % nanosPerSecond)}
}

// DurationOfMinutes returns a Duration of the given minutes, saturating at
// the bounds.
func DurationOfMinutes(minutes int64) Duration {
	return Duration{secs: saturatingMul(minutes, 60)}
}

// DurationOfHours returns a Duration of the given hours, saturating at the
// bounds.
func DurationOfHours(hours int64) Duration {
	return Duration{secs: saturatingMul(hours, 3_600)}
}

// DurationOfDays returns a Duration of the given 24-hour days, saturating
// at the bounds.
func DurationOfDays(days int64) Duration {
	return Duration{secs: saturatingMul(days, secondsPerDay)}
}

// DurationBetween returns the elapsed time from startInclusive to
// endExclusive, negative if end is before start.
func DurationBetween(startInclusive, endExclusive TemporalInstant) Duration {
	diff := new(big.Int).Sub(endExclusive.EpochNanoseconds(), startInclusive.EpochNanoseconds())
	return durationOfBigNanos(diff)
}

// Seconds returns the whole-second component of d.
func (d Duration) Seconds() int64 { return d.secs }

// Nanos returns the sub-second nanosecond component of d, carrying the
// same sign as Seconds.
func (d Duration) Nanos() int { return int(d.nanos) }

// IsZero reports whether d is the zero duration.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool { return d.secs < 0 || d.nanos < 0 }

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool { return d.secs > 0 || d.nanos > 0 }

// Plus returns d plus other, saturating at the bounds.
func (d Duration) Plus(other Duration) Duration {
	return durationOfBigNanos(new(big.Int).Add(d.bigNanos(), other.bigNanos()))
}

// Minus returns d minus other, saturating at the bounds.
func (d Duration) Minus(other Duration) Duration {
	return durationOfBigNanos(new(big.Int).Sub(d.bigNanos(), other.bigNanos()))
}

// PlusDays returns d plus the given 24-hour days, saturating at the
// bounds.
func (d Duration) PlusDays(days int64) Duration { return d.Plus(DurationOfDays(days)) }

// MinusDays returns d minus the given 24-hour days, saturating at the
// bounds.
func (d Duration) MinusDays(days int64) Duration { return d.Minus(DurationOfDays(days)) }

// PlusHours returns d plus the given hours, saturating at the bounds.
func (d Duration) PlusHours(hours int64) Duration { return d.Plus(DurationOfHours(hours)) }

// MinusHours returns d minus the given hours, saturating at the bounds.
func (d Duration) MinusHours(hours int64) Duration { return d.Minus(DurationOfHours(hours)) }

// PlusMinutes returns d plus the given minutes, saturating at the bounds.
func (d Duration) PlusMinutes(minutes int64) Duration { return d.Plus(DurationOfMinutes(minutes)) }

// MinusMinutes returns d minus the given minutes, saturating at the
// bounds.
func (d Duration) MinusMinutes(minutes int64) Duration { return d.Minus(DurationOfMinutes(minutes)) }

// PlusSeconds returns d plus the given seconds, saturating at the bounds.
func (d Duration) PlusSeconds(seconds int64) Duration { return d.Plus(DurationOfSeconds(seconds)) }

// MinusSeconds returns d minus the given seconds, saturating at the
// bounds.
func (d Duration) MinusSeconds(seconds int64) Duration { return d.Minus(DurationOfSeconds(seconds)) }

// PlusMillis returns d plus the given milliseconds, saturating at the
// bounds.
func (d Duration) PlusMillis(millis int64) Duration { return d.Plus(DurationOfMillis(millis)) }

// MinusMillis returns d minus the given milliseconds, saturating at the
// bounds.
func (d Duration) MinusMillis(millis int64) Duration { return d.Minus(DurationOfMillis(millis)) }

// PlusNanos returns d plus the given nanoseconds, saturating at the
// bounds.
func (d Duration) PlusNanos(nanos int64) Duration { return d.Plus(DurationOfNanos(nanos)) }

// MinusNanos returns d minus the given nanoseconds, saturating at the
// bounds.
func (d Duration) MinusNanos(nanos int64) Duration { return d.Minus(DurationOfNanos(nanos)) }

// Negated returns d with its sign flipped, saturating at the bounds.
func (d Duration) Negated() Duration {
	return durationOfBigNanos(new(big.Int).Neg(d.bigNanos()))
}

// Abs returns the magnitude of d. The result is never negative: the
// minimum representable duration clamps to the maximum rather than
// overflowing back to a negative value.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Negated()
	}
	return d
}

// Compare returns -1, 0, or +1 as d is shorter than, equal to, or longer
// than other.
func (d Duration) Compare(other Duration) int {
	return d.bigNanos().Cmp(other.bigNanos())
}

// ToDays returns the number of whole 24-hour days in d, truncated toward
// zero.
func (d Duration) ToDays() int64 { return d.secs / secondsPerDay }

// ToHours returns the number of whole hours in d, truncated toward zero,
// so -90 minutes yields -1.
func (d Duration) ToHours() int64 { return d.secs / 3_600 }

// ToMinutes returns the number of whole minutes in d, truncated toward
// zero.
func (d Duration) ToMinutes() int64 { return d.secs / 60 }

// ToSeconds returns the number of whole seconds in d, truncated toward
// zero.
func (d Duration) ToSeconds() int64 { return d.secs }

// ToMillis returns the number of whole milliseconds in d, truncated toward
// zero and clamped to the int64 range.
func (d Duration) ToMillis() int64 {
	ms := new(big.Int).Quo(d.bigNanos(), big.NewInt(nanosPerMilli))
	return clampToInt64(ms)
}

// ToNanos returns the number of nanoseconds in d, clamped to the int64
// range.
func (d Duration) ToNanos() int64 {
	return clampToInt64(d.bigNanos())
}

// String returns the ISO-8601 seconds-based representation of d, such as
// "PT2H30M" or "PT-0.5S". The zero duration is "PT0S".
func (d Duration) String() string {
	if d.IsZero() {
		return "PT0S"
	}
	hours := d.secs / 3_600
	minutes := (d.secs % 3_600) / 60
	secs := d.secs % 60

	var b strings.Builder
	b.WriteString("PT")
	if hours != 0 {
		fmt.Fprintf(&b, "%dH", hours)
	}
	if minutes != 0 {
		fmt.Fprintf(&b, "%dM", minutes)
	}
	if secs != 0 || d.nanos != 0 {
		if secs == 0 && d.nanos < 0 {
			b.WriteString("-0")
		} else {
			fmt.Fprintf(&b, "%d", secs)
		}
		if d.nanos != 0 {
			frac := strconv.AppendInt(make([]byte, 0, 10), int64(abs32(d.nanos))+nanosPerSecond, 10)
			b.WriteByte('.')
			b.Write(trimZeros(frac[1:]))
		}
		b.WriteByte('S')
	}
	return b.String()
}

var durationPattern = regexp.MustCompile(
	`^([+-]?)P(?:([+-]?\d+)D)?` +
		`(T(?:([+-]?\d+)H)?(?:([+-]?\d+)M)?(?:([+-]?\d+)(?:[.,](\d{1,9}))?S)?)?$`,
)

// ParseDuration parses the ISO-8601 seconds-based representation produced
// by [Duration.String], also accepting a days component, for example
// "P2DT3H4M" or "-PT30S". Returns an error wrapping [ErrParse] on
// malformed input.
func ParseDuration(src string) (Duration, error) {
	m := durationPattern.FindStringSubmatch(src)
	if m == nil || (m[2] == "" && m[3] == "") || (m[3] == "T" && m[4] == "" && m[5] == "" && m[6] == "") {
		return Duration{}, fmt.Errorf("%w: cannot parse %q as an ISO-8601 duration", ErrParse, src)
	}

	total := new(big.Int)
	add := func(field string, nanosPerUnit int64) error {
		if field == "" {
			return nil
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: duration component %q out of range in %q", ErrParse, field, src)
		}
		total.Add(total, new(big.Int).Mul(big.NewInt(n), big.NewInt(nanosPerUnit)))
		return nil
	}
	if err := add(m[2], nanosPerDay); err != nil {
		return Duration{}, err
	}
	if err := add(m[4], nanosPerHour); err != nil {
		return Duration{}, err
	}
	if err := add(m[5], nanosPerMinute); err != nil {
		return Duration{}, err
	}
	if err := add(m[6], nanosPerSecond); err != nil {
		return Duration{}, err
	}
	if m[7] != "" {
		frac, _ := strconv.ParseInt(m[7]+strings.Repeat("0", 9-len(m[7])), 10, 64)
		if strings.HasPrefix(m[6], "-") {
			frac = -frac
		}
		total.Add(total, big.NewInt(frac))
	}
	if m[1] == "-" {
		total.Neg(total)
	}
	return durationOfBigNanos(total), nil
}

// saturatingMul multiplies two int64 values, clamping to the int64 bounds
// on overflow.
func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a {
		if (a < 0) == (b < 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return p
}

// saturatingAdd adds two int64 values, clamping to the int64 bounds on
// overflow.
func saturatingAdd(a, b int64) int64 {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		if a > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return s
}

// saturatingNeg negates an int64 value. The most negative value has no
// int64 negation and clamps to the maximum, so subtraction built on it
// saturates toward the correct end of the range.
func saturatingNeg(n int64) int64 {
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	return -n
}

// clampToInt64 converts a big.Int to int64, clamping to the int64 bounds.
func clampToInt64(n *big.Int) int64 {
	if !n.IsInt64() {
		if n.Sign() > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return n.Int64()
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// trimZeros strips trailing zero digits from a fraction, leaving at least
// one digit.
func trimZeros(b []byte) []byte {
	for len(b) > 1 && b[len(b)-1] == '0' {
		b = b[:len(b)-1]
	}
	return b
}
