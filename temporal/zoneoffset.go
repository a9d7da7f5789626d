package temporal

import "fmt"

// ZoneOffset is a fixed offset from UTC in whole seconds, within ±18
// hours and always representable as hours, minutes, and seconds.
type ZoneOffset struct {
	totalSeconds int
}

// UTC is the zero offset.
var UTC = ZoneOffset{}

const maxOffsetSeconds = 18 * 3_600

// ZoneOffsetOfTotalSeconds returns the ZoneOffset for a whole-second
// offset. Returns an error wrapping [ErrField] outside ±18 hours.
func ZoneOffsetOfTotalSeconds(totalSeconds int) (ZoneOffset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return ZoneOffset{}, fmt.Errorf(
			"%w: zone offset %d seconds out of range -64800 to 64800", ErrField, totalSeconds,
		)
	}
	return ZoneOffset{totalSeconds: totalSeconds}, nil
}

// ZoneOffsetOfHours returns the ZoneOffset for a whole-hour offset.
// Returns an error wrapping [ErrField] outside ±18.
func ZoneOffsetOfHours(hours int) (ZoneOffset, error) {
	return ZoneOffsetOfTotalSeconds(hours * 3_600)
}

// ZoneOffsetOfHoursMinutes returns the ZoneOffset for an hours-and-minutes
// offset such as +05:30. The minutes must carry the same sign as the hours
// (or be zero). Returns an error wrapping [ErrField] on mixed signs or an
// offset outside ±18 hours.
func ZoneOffsetOfHoursMinutes(hours, minutes int) (ZoneOffset, error) {
	if hours > 0 && minutes < 0 || hours < 0 && minutes > 0 {
		return ZoneOffset{}, fmt.Errorf(
			"%w: zone offset hours %d and minutes %d differ in sign", ErrField, hours, minutes,
		)
	}
	if minutes < -59 || minutes > 59 {
		return ZoneOffset{}, fmt.Errorf("%w: zone offset minutes %d out of range -59 to 59", ErrField, minutes)
	}
	return ZoneOffsetOfTotalSeconds(hours*3_600 + minutes*60)
}

// MustZoneOffsetOfHours is like [ZoneOffsetOfHours] but panics on invalid
// input.
func MustZoneOffsetOfHours(hours int) ZoneOffset {
	off, err := ZoneOffsetOfHours(hours)
	if err != nil {
		panic(err)
	}
	return off
}

// TotalSeconds returns the offset as a whole-second count, negative west
// of Greenwich.
func (z ZoneOffset) TotalSeconds() int { return z.totalSeconds }

// String returns "Z" for UTC and the ±HH:MM[:SS] form otherwise.
func (z ZoneOffset) String() string {
	return string(appendOffset(make([]byte, 0, 9), z))
}
