package temporal

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt, err := LocalDateTimeOf(2021, March, 14, 10, 15, 30)
	r.NoError(err)
	a.Equal(MustLocalDateOf(2021, March, 14), dt.ToLocalDate())
	a.Equal(MustLocalTimeOf(10, 15, 30, 0), dt.ToLocalTime())
	a.Equal(2021, dt.Year())
	a.Equal(Sunday, dt.DayOfWeek())
	a.Equal(10, dt.Hour())

	_, err = LocalDateTimeOf(2021, February, 29, 0, 0, 0)
	r.ErrorIs(err, ErrField)
	_, err = LocalDateTimeOf(2021, February, 28, 24, 0, 0)
	r.ErrorIs(err, ErrField)
}

func TestLocalDateTimeCarriesAcrossMidnight(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	dt := MustLocalDateTimeOf(2021, March, 14, 23, 30, 0)

	got := dt.PlusHours(1)
	a.Equal(MustLocalDateTimeOf(2021, March, 15, 0, 30, 0), got)

	got = dt.PlusMinutes(45)
	a.Equal(MustLocalDateTimeOf(2021, March, 15, 0, 15, 0), got)

	got = MustLocalDateTimeOf(2021, March, 14, 0, 15, 0).MinusMinutes(30)
	a.Equal(MustLocalDateTimeOf(2021, March, 13, 23, 45, 0), got)

	// A whole negative day through the seconds path.
	got = dt.MinusSeconds(86_400)
	a.Equal(MustLocalDateTimeOf(2021, March, 13, 23, 30, 0), got)

	// Nanosecond carry at the year boundary.
	eve := MustLocalDateTimeOf(2020, December, 31, 23, 59, 59)
	a.Equal(MustLocalDateTimeOf(2021, January, 1, 0, 0, 0), eve.PlusSeconds(1))
	a.Equal(
		MustLocalDateTimeOf(2021, January, 1, 0, 0, 0).MinusNanos(1).ToLocalTime(),
		MustLocalTimeOf(23, 59, 59, 999_999_999),
	)
}

func TestLocalDateTimeDateArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	dt := MustLocalDateTimeOf(2021, January, 31, 10, 15, 30)

	// Date-scale math follows the date rules and never touches the time.
	a.Equal(MustLocalDateTimeOf(2021, February, 28, 10, 15, 30), dt.PlusMonths(1))
	a.Equal(MustLocalDateTimeOf(2022, January, 31, 10, 15, 30), dt.PlusYears(1))
	a.Equal(MustLocalDateTimeOf(2021, February, 7, 10, 15, 30), dt.PlusWeeks(1))
	a.Equal(MustLocalDateTimeOf(2021, February, 1, 10, 15, 30), dt.PlusDays(1))
	a.Equal(MustLocalDateTimeOf(2021, January, 30, 10, 15, 30), dt.MinusDays(1))
}

func TestLocalDateTimeMinusMostNegative(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	dt := MustLocalDateTimeOf(2021, March, 14, 2, 0, 0)
	top := MustLocalDateOf(MaxYear, December, 31)

	// Subtracting the most negative count moves forward to the top of the
	// date range, advancing the time by the sub-day remainder.
	got := dt.MinusHours(math.MinInt64)
	a.Equal(top, got.ToLocalDate())
	a.Equal(MustLocalTimeOf(10, 0, 0, 0), got.ToLocalTime())

	a.Equal(top, dt.MinusDays(math.MinInt64).ToLocalDate())
	a.Equal(dt.ToLocalTime(), dt.MinusDays(math.MinInt64).ToLocalTime())

	// Subtracting the most negative count is adding 2^63 units.
	a.Equal(dt.PlusMinutes(math.MaxInt64).PlusMinutes(1), dt.MinusMinutes(math.MinInt64))
	a.Equal(dt.PlusSeconds(math.MaxInt64).PlusSeconds(1), dt.MinusSeconds(math.MinInt64))
	a.Equal(dt.PlusMillis(math.MaxInt64).PlusMillis(1), dt.MinusMillis(math.MinInt64))
}

func TestLocalDateTimeDuration(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	start := MustLocalDateTimeOf(2021, March, 14, 10, 0, 0)
	end := MustLocalDateTimeOf(2021, March, 15, 12, 30, 0)

	d := end.Sub(start)
	a.Equal(DurationOfMinutes(26*60+30), d)
	a.Equal(end, start.PlusDuration(d))
	a.Equal(start, end.MinusDuration(d))
	a.Equal(d.Negated(), start.Sub(end))
}

func TestLocalDateTimeWith(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt := MustLocalDateTimeOf(2021, March, 14, 10, 15, 30)

	got, err := dt.WithDayOfMonth(31)
	r.NoError(err)
	a.Equal(MustLocalDateTimeOf(2021, March, 31, 10, 15, 30), got)

	_, err = dt.WithMonth(February)
	r.NoError(err)
	_, err = MustLocalDateTimeOf(2021, March, 31, 0, 0, 0).WithMonth(February)
	r.ErrorIs(err, ErrField)

	got, err = dt.WithHour(0)
	r.NoError(err)
	a.Equal(MustLocalDateTimeOf(2021, March, 14, 0, 15, 30), got)

	_, err = dt.WithHour(24)
	r.ErrorIs(err, ErrField)
	_, err = dt.WithMinute(60)
	r.ErrorIs(err, ErrField)
	_, err = dt.WithSecond(-1)
	r.ErrorIs(err, ErrField)
	_, err = dt.WithNanosecond(-1)
	r.ErrorIs(err, ErrField)
	_, err = dt.WithDayOfYear(366)
	r.ErrorIs(err, ErrField)
}

func TestLocalDateTimeNavigation(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	dt := MustLocalDateTimeOf(2021, March, 14, 10, 15, 30)

	a.Equal(MustLocalDateTimeOf(2021, March, 1, 10, 15, 30), dt.FirstDayOfMonth())
	a.Equal(MustLocalDateTimeOf(2021, March, 31, 10, 15, 30), dt.LastDayOfMonth())
	a.Equal(MustLocalDateTimeOf(2021, April, 1, 10, 15, 30), dt.FirstDayOfNextMonth())
	a.Equal(MustLocalDateTimeOf(2021, December, 31, 10, 15, 30), dt.LastDayOfYear())
	a.Equal(MustLocalDateTimeOf(2022, January, 1, 10, 15, 30), dt.FirstDayOfNextYear())
	a.Equal(MustLocalDateTimeOf(2021, March, 15, 10, 15, 30), dt.Next(Monday))
	a.Equal(MustLocalDateTimeOf(2021, March, 29, 10, 15, 30), dt.LastInMonth(Monday))
}

func TestLocalDateTimeEpoch(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(int64(0), MustLocalDateTimeOf(1970, January, 1, 0, 0, 0).EpochSeconds())
	a.Equal(int64(86_400+3_661), MustLocalDateTimeOf(1970, January, 2, 1, 1, 1).EpochSeconds())
	a.Equal(int64(-1), MustLocalDateTimeOf(1969, December, 31, 23, 59, 59).EpochSeconds())
	a.Equal(int64(1_000), MustLocalDateTimeOf(1970, January, 1, 0, 0, 1).EpochMilliseconds())
}

func TestLocalDateTimeCompare(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	early := MustLocalDateTimeOf(2021, March, 14, 10, 0, 0)
	late := MustLocalDateTimeOf(2021, March, 14, 10, 0, 1)

	a.True(early.IsBefore(late))
	a.True(late.IsAfter(early))
	a.Equal(0, early.Compare(early))
	a.True(early.IsOnOrBefore(early))
	a.True(early.IsOnOrAfter(early))

	// The date dominates the time.
	a.True(MustLocalDateTimeOf(2021, March, 15, 0, 0, 0).IsAfter(late))
}

func TestLocalDateTimeString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("2021-03-14T10:15:30", MustLocalDateTimeOf(2021, March, 14, 10, 15, 30).String())
	a.Equal("2021-01-01T00:00:00", MustLocalDateTimeOf(2021, January, 1, 0, 0, 0).String())
}

func TestLocalDateTimeJSON(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dt := MustLocalDateTimeOf(2021, March, 14, 10, 15, 30)
	b, err := json.Marshal(dt)
	r.NoError(err)
	a.Equal(`"2021-03-14T10:15:30"`, string(b))

	var back LocalDateTime
	r.NoError(json.Unmarshal(b, &back))
	a.Equal(dt, back)

	r.ErrorIs(json.Unmarshal([]byte(`"2021-03-14 10:15:30"`), &back), ErrParse)
}
