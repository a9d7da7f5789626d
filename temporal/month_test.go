package temporal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	m, err := MonthOf(3)
	r.NoError(err)
	a.Equal(March, m)
	a.Equal(3, m.Value())

	_, err = MonthOf(0)
	r.ErrorIs(err, ErrField)
	_, err = MonthOf(13)
	r.ErrorIs(err, ErrField)
}

func TestMonthPlusWraps(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(February, January.Plus(1))
	a.Equal(January, December.Plus(1))
	a.Equal(December, January.Minus(1))
	a.Equal(January, January.Plus(24))
	a.Equal(November, January.Minus(26))
	a.Equal(March, December.Plus(15))

	// Subtracting the most negative count is adding 2^63 months, which is
	// eight months forward.
	a.Equal(September, January.Minus(math.MinInt64))

	for m := January; m <= December; m++ {
		a.Equal(m, m.Plus(7).Minus(7))
	}
}

func TestMonthLength(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(28, February.Length(false))
	a.Equal(29, February.Length(true))
	a.Equal(31, January.Length(false))
	a.Equal(30, April.Length(true))
	a.Equal(28, February.MinLength())
	a.Equal(29, February.MaxLength())
	a.Equal(31, December.MaxLength())
}

func TestMonthString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("JANUARY", January.String())
	a.Equal("DECEMBER", December.String())
	a.Equal("Month(0)", Month(0).String())
	a.Equal("Month(13)", Month(13).String())
}

func TestDayOfWeekOf(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	dow, err := DayOfWeekOf(7)
	r.NoError(err)
	a.Equal(Sunday, dow)
	a.Equal(7, dow.Value())

	_, err = DayOfWeekOf(0)
	r.ErrorIs(err, ErrField)
	_, err = DayOfWeekOf(8)
	r.ErrorIs(err, ErrField)
}

func TestDayOfWeekPlusWraps(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal(Tuesday, Monday.Plus(1))
	a.Equal(Monday, Sunday.Plus(1))
	a.Equal(Sunday, Monday.Minus(1))
	a.Equal(Monday, Monday.Plus(700))
	a.Equal(Thursday, Sunday.Plus(11))

	// Subtracting the most negative count is adding 2^63 days, one day
	// past a whole number of weeks.
	a.Equal(Tuesday, Monday.Minus(math.MinInt64))

	for dow := Monday; dow <= Sunday; dow++ {
		a.Equal(dow, dow.Plus(3).Minus(3))
	}
}

func TestDayOfWeekString(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	a.Equal("MONDAY", Monday.String())
	a.Equal("SUNDAY", Sunday.String())
}
