package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationConstructors(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(int64(90), DurationOfSeconds(90).Seconds())
	a.Equal(DurationOfSeconds(120), DurationOfMinutes(2))
	a.Equal(DurationOfSeconds(7_200), DurationOfHours(2))
	a.Equal(DurationOfSeconds(172_800), DurationOfDays(2))
	a.Equal(Duration{secs: 1, nanos: 500_000_000}, DurationOfMillis(1_500))
	a.Equal(Duration{secs: 0, nanos: 1}, DurationOfNanos(1))

	// Negative sub-second values keep both fields on the same sign.
	a.Equal(Duration{secs: -1, nanos: -500_000_000}, DurationOfMillis(-1_500))
	a.Equal(Duration{secs: 0, nanos: -1}, DurationOfNanos(-1))
}

func TestDurationSignPredicates(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.True(DurationOfSeconds(0).IsZero())
	a.False(DurationOfNanos(1).IsZero())
	a.True(DurationOfNanos(1).IsPositive())
	a.False(DurationOfNanos(1).IsNegative())
	a.True(DurationOfNanos(-1).IsNegative())
	a.False(DurationOfNanos(-1).IsPositive())
}

func TestDurationArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := DurationOfMinutes(90)
	a.Equal(DurationOfMinutes(150), d.Plus(DurationOfHours(1)))
	a.Equal(DurationOfMinutes(30), d.Minus(DurationOfHours(1)))
	a.Equal(DurationOfMinutes(-90), d.Negated())
	a.Equal(d, d.Negated().Abs())
	a.Equal(d, d.PlusNanos(1).MinusNanos(1))
	a.Equal(DurationOfSeconds(1_801), d.PlusHours(-1).PlusSeconds(2).PlusMillis(-1_000))

	// Crossing zero flips both components together.
	half := DurationOfMillis(500)
	a.Equal(Duration{secs: 0, nanos: -500_000_000}, half.MinusSeconds(1))
}

func TestDurationSaturates(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	top := Duration{secs: math.MaxInt64, nanos: nanosPerSecond - 1}
	bottom := Duration{secs: math.MinInt64, nanos: -(nanosPerSecond - 1)}

	a.Equal(top, DurationOfSeconds(math.MaxInt64).PlusSeconds(math.MaxInt64))
	a.Equal(bottom, DurationOfSeconds(math.MinInt64).MinusSeconds(math.MaxInt64))

	// The boundary is a fixed point under further same-direction math.
	a.Equal(top, top.PlusNanos(1))
	a.Equal(top, top.PlusDays(math.MaxInt64))
	a.Equal(bottom, bottom.MinusNanos(1))

	// Abs of the minimum clamps instead of overflowing negative.
	a.Equal(top, bottom.Abs())
	a.False(bottom.Abs().IsNegative())
}

func TestDurationTruncatesTowardZero(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := DurationOfMinutes(90)
	a.Equal(int64(1), d.ToHours())
	a.Equal(int64(90), d.ToMinutes())
	a.Equal(int64(0), d.ToDays())

	// Negative values truncate toward zero, not floor.
	n := DurationOfMinutes(-90)
	a.Equal(int64(-1), n.ToHours())
	a.Equal(int64(-90), n.ToMinutes())
	a.Equal(int64(0), n.ToDays())
	a.Equal(int64(-5_400_000), n.ToMillis())
	a.Equal(int64(-5_400_000_000_000), n.ToNanos())

	a.Equal(int64(-3), DurationOfSeconds(-(3*3_600+59*60+59)).ToHours())
	a.Equal(int64(2), DurationOfHours(49).ToDays())
	a.Equal(int64(1_500), DurationOfMillis(1_500).ToMillis())

	// Out-of-range nano counts clamp.
	a.Equal(int64(math.MaxInt64), Duration{secs: math.MaxInt64}.ToNanos())
}

func TestDurationBetween(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := MustLocalDateTimeOf(2021, March, 14, 10, 0, 0)
	end := MustLocalDateTimeOf(2021, March, 14, 11, 30, 0)

	a.Equal(DurationOfMinutes(90), DurationBetween(start, end))
	a.Equal(DurationOfMinutes(-90), DurationBetween(end, start))
	a.True(DurationBetween(start, start).IsZero())

	// Mixed operand types measure the same timeline.
	a.Equal(
		DurationOfSeconds(30),
		DurationBetween(InstantOfEpochSeconds(0), MustLocalDateTimeOf(1970, January, 1, 0, 0, 30)),
	)
}

func TestDurationCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(-1, DurationOfSeconds(1).Compare(DurationOfSeconds(2)))
	a.Equal(1, DurationOfNanos(1).Compare(DurationOfNanos(-1)))
	a.Equal(0, DurationOfMinutes(1).Compare(DurationOfSeconds(60)))
}

func TestDurationString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		d    Duration
		want string
	}{
		{DurationOfSeconds(0), "PT0S"},
		{DurationOfMinutes(150), "PT2H30M"},
		{DurationOfSeconds(61), "PT1M1S"},
		{DurationOfMillis(500), "PT0.5S"},
		{DurationOfMillis(-500), "PT-0.5S"},
		{DurationOfSeconds(-90), "PT-1M-30S"},
		{DurationOfNanos(1), "PT0.000000001S"},
		{DurationOfHours(48), "PT48H"},
	} {
		a.Equal(tc.want, tc.d.String())
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		src  string
		want Duration
	}{
		{"PT0S", DurationOfSeconds(0)},
		{"PT2H30M", DurationOfMinutes(150)},
		{"PT1M1S", DurationOfSeconds(61)},
		{"PT0.5S", DurationOfMillis(500)},
		{"PT-0.5S", DurationOfMillis(-500)},
		{"-PT30S", DurationOfSeconds(-30)},
		{"P2DT3H", DurationOfHours(51)},
		{"P1D", DurationOfDays(1)},
		{"PT0,5S", DurationOfMillis(500)},
	} {
		got, err := ParseDuration(tc.src)
		r.NoError(err, tc.src)
		a.Equal(tc.want, got, tc.src)
	}

	// String output round-trips.
	for _, d := range []Duration{
		DurationOfMinutes(150),
		DurationOfMillis(-500),
		DurationOfSeconds(-90),
		DurationOfNanos(1),
	} {
		got, err := ParseDuration(d.String())
		r.NoError(err)
		a.Equal(d, got)
	}

	for _, src := range []string{"", "P", "PT", "10S", "PT1X", "banana"} {
		_, err := ParseDuration(src)
		r.ErrorIs(err, ErrParse, src)
	}
}
