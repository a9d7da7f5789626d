// Package zone provides ZoneResolver implementations that map zone names
// to fixed UTC offsets. The temporal package never resolves a zone on its
// own; code that needs an offset for a named zone injects one of these
// resolvers, or its own.
package zone

import (
	"errors"
	"fmt"
	"time"

	"github.com/jstano/joda-go/temporal"
)

// ErrZone is the sentinel for zone names a resolver cannot map to an
// offset.
var ErrZone = errors.New("zone")

// FixedResolver maps zone names to fixed offsets from an in-memory
// table. The zero value resolves only "UTC".
type FixedResolver struct {
	offsets map[string]temporal.ZoneOffset
}

// NewFixedResolver returns a FixedResolver over a copy of the given
// table. "UTC" resolves to offset zero whether or not the table names
// it.
func NewFixedResolver(offsets map[string]temporal.ZoneOffset) *FixedResolver {
	table := make(map[string]temporal.ZoneOffset, len(offsets))
	for name, off := range offsets {
		table[name] = off
	}
	return &FixedResolver{offsets: table}
}

// Offset implements [temporal.ZoneResolver]. Returns an error wrapping
// [ErrZone] for a name not in the table.
func (r *FixedResolver) Offset(name string) (temporal.ZoneOffset, error) {
	if name == string(temporal.ZoneUTC) {
		return temporal.UTC, nil
	}
	if off, ok := r.offsets[name]; ok {
		return off, nil
	}
	return temporal.ZoneOffset{}, fmt.Errorf("%w: unknown zone %q", ErrZone, name)
}

// SystemResolver resolves zone names through the platform's IANA time
// zone database and reports the offset in force at the moment of the
// call. Daylight-saving transitions are therefore visible across calls
// but never within one.
type SystemResolver struct{}

// Offset implements [temporal.ZoneResolver]. Returns an error wrapping
// [ErrZone] when the platform database does not know the name.
func (SystemResolver) Offset(name string) (temporal.ZoneOffset, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return temporal.ZoneOffset{}, fmt.Errorf("%w: %q: %v", ErrZone, name, err)
	}
	_, seconds := time.Now().In(loc).Zone()
	return temporal.ZoneOffsetOfTotalSeconds(seconds)
}
