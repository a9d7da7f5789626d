package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocalDate(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		src  string
		want LocalDate
	}{
		{"2021-03-14", MustLocalDateOf(2021, March, 14)},
		{"0044-03-15", MustLocalDateOf(44, March, 15)},
		{"-0044-03-15", MustLocalDateOf(-44, March, 15)},
		{"+2021-03-14", MustLocalDateOf(2021, March, 14)},
		{"10000-01-01", MustLocalDateOf(10_000, January, 1)},
		{"2020-02-29", MustLocalDateOf(2020, February, 29)},
	} {
		got, err := ParseLocalDate(tc.src)
		r.NoError(err, tc.src)
		a.Equal(tc.want, got, tc.src)
	}

	for _, src := range []string{"", "2021", "2021-3-14", "21-03-14", "2021/03/14", "2021-03-14T00:00:00"} {
		_, err := ParseLocalDate(src)
		r.ErrorIs(err, ErrParse, src)
	}

	_, err := ParseLocalDate("2021-02-29")
	r.ErrorIs(err, ErrField)
}

func TestParseLocalTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		src  string
		want LocalTime
	}{
		{"10:15", MustLocalTimeOf(10, 15, 0, 0)},
		{"10:15:30", MustLocalTimeOf(10, 15, 30, 0)},
		{"10:15:30.5", MustLocalTimeOf(10, 15, 30, 500_000_000)},
		{"10:15:30.000000001", MustLocalTimeOf(10, 15, 30, 1)},
		{"00:00", Midnight},
		{"23:59:59.999999999", MustLocalTimeOf(23, 59, 59, 999_999_999)},
	} {
		got, err := ParseLocalTime(tc.src)
		r.NoError(err, tc.src)
		a.Equal(tc.want, got, tc.src)
	}

	for _, src := range []string{"", "10", "10:5", "10:15:30.", "10:15:30.0000000001", "1O:15"} {
		_, err := ParseLocalTime(src)
		r.ErrorIs(err, ErrParse, src)
	}

	_, err := ParseLocalTime("24:00")
	r.ErrorIs(err, ErrField)
	_, err = ParseLocalTime("10:60")
	r.ErrorIs(err, ErrField)
}

func TestParseLocalDateTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	got, err := ParseLocalDateTime("2021-03-14T10:15:30")
	r.NoError(err)
	a.Equal(MustLocalDateTimeOf(2021, March, 14, 10, 15, 30), got)

	got, err = ParseLocalDateTime("-0044-03-15T00:00")
	r.NoError(err)
	a.Equal(-44, got.Year())
	a.Equal(Midnight, got.ToLocalTime())

	// String output round-trips.
	dt := MustLocalDateTimeOf(2021, March, 14, 10, 15, 30)
	got, err = ParseLocalDateTime(dt.String())
	r.NoError(err)
	a.Equal(dt, got)

	for _, src := range []string{"", "2021-03-14", "10:15:30", "2021-03-14 10:15:30"} {
		_, err := ParseLocalDateTime(src)
		r.ErrorIs(err, ErrParse, src)
	}
}

func TestParseZoneOffset(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	for _, tc := range []struct {
		src  string
		want int
	}{
		{"Z", 0},
		{"z", 0},
		{"+01:00", 3_600},
		{"-05:00", -18_000},
		{"+05:30", 19_800},
		{"-05:30:30", -(5*3_600 + 30*60 + 30)},
	} {
		got, err := ParseZoneOffset(tc.src)
		r.NoError(err, tc.src)
		a.Equal(tc.want, got.TotalSeconds(), tc.src)
	}

	for _, src := range []string{"", "01:00", "+1:00", "+01", "UTC"} {
		_, err := ParseZoneOffset(src)
		r.ErrorIs(err, ErrParse, src)
	}

	_, err := ParseZoneOffset("+19:00")
	r.ErrorIs(err, ErrField)
}

func TestParseOffsetDateTime(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	got, err := ParseOffsetDateTime("2021-03-14T10:15:30+01:00")
	r.NoError(err)
	a.Equal(MustLocalDateTimeOf(2021, March, 14, 10, 15, 30), got.ToLocalDateTime())
	a.Equal(MustZoneOffsetOfHours(1), got.Offset())

	got, err = ParseOffsetDateTime("2021-03-14T10:15:30.5Z")
	r.NoError(err)
	a.Equal(UTC, got.Offset())
	a.Equal(500_000_000, got.Nanosecond())

	// Negative years parse even though the year field leads with a minus.
	got, err = ParseOffsetDateTime("-0044-03-15T10:15:30-05:00")
	r.NoError(err)
	a.Equal(-44, got.Year())
	a.Equal(MustZoneOffsetOfHours(-5), got.Offset())

	// String output round-trips.
	o := MustLocalDateTimeOf(2021, March, 14, 10, 15, 30).AtOffset(MustZoneOffsetOfHours(-5))
	got, err = ParseOffsetDateTime(o.String())
	r.NoError(err)
	a.Equal(o, got)

	for _, src := range []string{"", "2021-03-14T10:15:30", "2021-03-14", "10:15:30Z"} {
		_, err := ParseOffsetDateTime(src)
		r.ErrorIs(err, ErrParse, src)
	}
}
