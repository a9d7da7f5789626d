package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLeapYear(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2000, true},
		{2004, true},
		{2020, true},
		{2024, true},
		{1900, false},
		{2100, false},
		{2021, false},
		{2023, false},
		{0, true},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		a.Equal(tc.leap, IsLeapYear(tc.year), "year %d", tc.year)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(31, DaysInMonth(2021, January))
	a.Equal(28, DaysInMonth(2021, February))
	a.Equal(29, DaysInMonth(2020, February))
	a.Equal(28, DaysInMonth(1900, February))
	a.Equal(29, DaysInMonth(2000, February))
	a.Equal(30, DaysInMonth(2021, April))
	a.Equal(31, DaysInMonth(2021, December))

	// Months must sum to the year length.
	for _, year := range []int{2020, 2021} {
		total := 0
		for m := January; m <= December; m++ {
			total += DaysInMonth(year, m)
		}
		a.Equal(DaysInYear(year), total, "year %d", year)
	}
}

func TestOrdinalRoundTrip(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, year := range []int{2020, 2021} {
		for ord := 1; ord <= DaysInYear(year); ord++ {
			month, day := dateOfOrdinal(year, ord)
			a.Equal(ord, ordinalOfDate(year, month, day), "year %d ordinal %d", year, ord)
		}
	}
	a.Equal(60, ordinalOfDate(2020, February, 29))
	a.Equal(61, ordinalOfDate(2020, March, 1))
	a.Equal(60, ordinalOfDate(2021, March, 1))
}

func TestEpochDay(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	for _, tc := range []struct {
		year     int
		month    Month
		day      int
		epochDay int64
	}{
		{1970, January, 1, 0},
		{1970, January, 2, 1},
		{1969, December, 31, -1},
		{2000, January, 1, 10957},
		{1960, January, 1, -3653},
	} {
		a.Equal(tc.epochDay, epochDayOf(tc.year, tc.month, tc.day))
		y, m, d := dateOfEpochDay(tc.epochDay)
		a.Equal(tc.year, y)
		a.Equal(tc.month, m)
		a.Equal(tc.day, d)
	}
}

func TestWeekdayOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(Thursday, weekdayOf(1970, January, 1))
	a.Equal(Sunday, weekdayOf(2021, March, 14))
	a.Equal(Monday, weekdayOf(2021, March, 15))
	a.Equal(Saturday, weekdayOf(2000, January, 1))
	a.Equal(Friday, weekdayOf(1969, December, 26))
}

func TestFloorDivMod(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(int64(2), floorDiv(7, 3))
	a.Equal(int64(-3), floorDiv(-7, 3))
	a.Equal(int64(1), floorMod(7, 3))
	a.Equal(int64(2), floorMod(-7, 3))
	a.Equal(int64(0), floorMod(-6, 3))

	// Quotient and remainder must recompose.
	for _, n := range []int64{-100, -1, 0, 1, 99} {
		a.Equal(n, floorDiv(n, 7)*7+floorMod(n, 7))
	}
}
