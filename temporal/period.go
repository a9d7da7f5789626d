package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Period is a calendar-based amount of time: a count of years, months, and
// days. The three components are independently signed and never normalized
// across fields, so 15 months stays 15 months rather than collapsing into
// one year and three months.
type Period struct {
	Years  int
	Months int
	Days   int
}

// PeriodOf returns a Period of the given years, months, and days.
func PeriodOf(years, months, days int) Period {
	return Period{Years: years, Months: months, Days: days}
}

// PeriodOfYears returns a Period of the given years only.
func PeriodOfYears(years int) Period { return Period{Years: years} }

// PeriodOfMonths returns a Period of the given months only.
func PeriodOfMonths(months int) Period { return Period{Months: months} }

// PeriodOfWeeks returns a Period of the given weeks, held as days.
func PeriodOfWeeks(weeks int) Period { return Period{Days: weeks * 7} }

// PeriodOfDays returns a Period of the given days only.
func PeriodOfDays(days int) Period { return Period{Days: days} }

// IsZero reports whether every component of p is zero.
func (p Period) IsZero() bool { return p.Years == 0 && p.Months == 0 && p.Days == 0 }

// IsNegative reports whether any component of p is negative. A mixed-sign
// period such as (1 year, -1 month) is therefore both negative and
// positive; this follows the java.time contract.
func (p Period) IsNegative() bool { return p.Years < 0 || p.Months < 0 || p.Days < 0 }

// IsPositive reports whether any component of p is positive. See
// [Period.IsNegative] for the mixed-sign caveat.
func (p Period) IsPositive() bool { return p.Years > 0 || p.Months > 0 || p.Days > 0 }

// TotalMonths returns the years and months of p as a single month count.
// Days do not contribute.
func (p Period) TotalMonths() int64 { return int64(p.Years)*12 + int64(p.Months) }

// Plus returns the component-wise sum of p and other.
func (p Period) Plus(other Period) Period {
	return Period{Years: p.Years + other.Years, Months: p.Months + other.Months, Days: p.Days + other.Days}
}

// Minus returns the component-wise difference of p and other.
func (p Period) Minus(other Period) Period {
	return Period{Years: p.Years - other.Years, Months: p.Months - other.Months, Days: p.Days - other.Days}
}

// Negated returns p with every component's sign flipped.
func (p Period) Negated() Period {
	return Period{Years: -p.Years, Months: -p.Months, Days: -p.Days}
}

// PlusYears returns p with years added to the years component.
func (p Period) PlusYears(years int) Period { return Period{p.Years + years, p.Months, p.Days} }

// PlusMonths returns p with months added to the months component.
func (p Period) PlusMonths(months int) Period { return Period{p.Years, p.Months + months, p.Days} }

// PlusDays returns p with days added to the days component.
func (p Period) PlusDays(days int) Period { return Period{p.Years, p.Months, p.Days + days} }

// MinusYears returns p with years subtracted from the years component.
func (p Period) MinusYears(years int) Period { return p.PlusYears(-years) }

// MinusMonths returns p with months subtracted from the months component.
func (p Period) MinusMonths(months int) Period { return p.PlusMonths(-months) }

// MinusDays returns p with days subtracted from the days component.
func (p Period) MinusDays(days int) Period { return p.PlusDays(-days) }

// String returns the ISO-8601 representation of p, such as "P1Y2M3D". The
// zero period is "P0D".
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.Years != 0 {
		fmt.Fprintf(&b, "%dY", p.Years)
	}
	if p.Months != 0 {
		fmt.Fprintf(&b, "%dM", p.Months)
	}
	if p.Days != 0 {
		fmt.Fprintf(&b, "%dD", p.Days)
	}
	return b.String()
}

var periodPattern = regexp.MustCompile(
	`^([+-]?)P(?:([+-]?\d+)Y)?(?:([+-]?\d+)M)?(?:([+-]?\d+)W)?(?:([+-]?\d+)D)?$`,
)

// ParsePeriod parses the ISO-8601 representation produced by
// [Period.String], also accepting a weeks component folded into days, for
// example "P1Y2M3D" or "-P4W". Returns an error wrapping [ErrParse] on
// malformed input.
func ParsePeriod(src string) (Period, error) {
	m := periodPattern.FindStringSubmatch(src)
	if m == nil || (m[2] == "" && m[3] == "" && m[4] == "" && m[5] == "") {
		return Period{}, fmt.Errorf("%w: cannot parse %q as an ISO-8601 period", ErrParse, src)
	}
	parse := func(field string) (int, error) {
		if field == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("%w: period component %q out of range in %q", ErrParse, field, src)
		}
		return n, nil
	}
	years, err := parse(m[2])
	if err != nil {
		return Period{}, err
	}
	months, err := parse(m[3])
	if err != nil {
		return Period{}, err
	}
	weeks, err := parse(m[4])
	if err != nil {
		return Period{}, err
	}
	days, err := parse(m[5])
	if err != nil {
		return Period{}, err
	}
	p := Period{Years: years, Months: months, Days: weeks*7 + days}
	if m[1] == "-" {
		p = p.Negated()
	}
	return p, nil
}
