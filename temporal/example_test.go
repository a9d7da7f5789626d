package temporal_test

import (
	"fmt"
	"log"

	"github.com/jstano/joda-go/temporal"
)

// Adding a month to the last day of January clamps to the length of
// February rather than rolling over into March.
func ExampleLocalDate_PlusMonths() {
	d := temporal.MustLocalDateOf(2021, temporal.January, 31)

	fmt.Println(d.PlusMonths(1))
	fmt.Println(d.PlusMonths(1).PlusMonths(1))

	leap := temporal.MustLocalDateOf(2020, temporal.January, 31)
	fmt.Println(leap.PlusMonths(1))
	// Output:
	// 2021-02-28
	// 2021-03-28
	// 2020-02-29
}

// Time-of-day arithmetic wraps at midnight and never fails; the composite
// date-time carries the overflow into the date instead.
func ExampleLocalTime_PlusHours() {
	t := temporal.MustLocalTimeOf(23, 30, 0, 0)
	fmt.Println(t.PlusHours(2))

	dt := temporal.MustLocalDateTimeOf(2021, temporal.March, 14, 23, 30, 0)
	fmt.Println(dt.PlusHours(2))
	// Output:
	// 01:30:00
	// 2021-03-15T01:30:00
}

// A zone stays a name until a resolver turns it into a concrete offset.
func ExampleZonedDateTime_ToOffsetDateTime() {
	dt := temporal.MustLocalDateTimeOf(2021, temporal.March, 14, 10, 15, 30)
	z := dt.AtZone(temporal.ZoneIDOf("Europe/Madrid"))
	fmt.Println(z)

	o, err := z.ToOffsetDateTime(madridResolver{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(o)
	// Output:
	// 2021-03-14T10:15:30[Europe/Madrid]
	// 2021-03-14T10:15:30+01:00
}

type madridResolver struct{}

func (madridResolver) Offset(name string) (temporal.ZoneOffset, error) {
	if name != "Europe/Madrid" {
		return temporal.ZoneOffset{}, fmt.Errorf("unknown zone %q", name)
	}
	return temporal.ZoneOffsetOfHours(1)
}
