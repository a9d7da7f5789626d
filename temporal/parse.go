package temporal

import (
	"fmt"
	"strconv"
	"strings"
)

// ISO-8601 text parsing shared by the value types. The parsers accept
// exactly what the String methods produce, plus a wider year field for
// dates outside 0000-9999 and an optional seconds field for times.

// unquote strips the surrounding double quotes from a JSON string
// literal. Escapes never occur in the ISO forms, so a plain slice is
// enough.
func unquote(data []byte) string {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// parseError constructs the error for text that does not match the
// expected ISO form.
func parseError(kind, src string) error {
	return fmt.Errorf("%w: invalid %s %q", ErrParse, kind, src)
}

// parseInt parses a decimal field of fixed width.
func parseInt(field string, width int) (int, bool) {
	if len(field) != width {
		return 0, false
	}
	n, err := strconv.Atoi(field)
	if err != nil || field[0] == '+' || field[0] == '-' {
		return 0, false
	}
	return n, true
}

// ParseLocalDate parses an ISO-8601 date such as "2021-03-14" or
// "-0044-03-15". The year field takes an optional sign and at least four
// digits; months and days are exactly two. Returns an error wrapping
// [ErrParse] on malformed text and [ErrField] on an invalid calendar
// date.
func ParseLocalDate(src string) (LocalDate, error) {
	rest := src
	negative := false
	if strings.HasPrefix(rest, "-") {
		negative = true
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 || len(parts[0]) < 4 {
		return LocalDate{}, parseError("date", src)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return LocalDate{}, parseError("date", src)
	}
	if negative {
		year = -year
	}
	month, okM := parseInt(parts[1], 2)
	day, okD := parseInt(parts[2], 2)
	if !okM || !okD {
		return LocalDate{}, parseError("date", src)
	}
	return LocalDateOf(year, Month(month), day)
}

// ParseLocalTime parses an ISO-8601 time of day such as "10:15",
// "10:15:30", or "10:15:30.5". Hours and minutes are required; seconds
// and a fractional second of up to nine digits are optional. Returns an
// error wrapping [ErrParse] on malformed text and [ErrField] on an
// out-of-range field.
func ParseLocalTime(src string) (LocalTime, error) {
	rest := src
	nano := 0
	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		frac := rest[dot+1:]
		rest = rest[:dot]
		if frac == "" || len(frac) > 9 {
			return LocalTime{}, parseError("time", src)
		}
		n, err := strconv.Atoi(frac)
		if err != nil || frac[0] == '+' || frac[0] == '-' {
			return LocalTime{}, parseError("time", src)
		}
		for i := 0; i < 9-len(frac); i++ {
			n *= 10
		}
		nano = n
	}
	parts := strings.Split(rest, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return LocalTime{}, parseError("time", src)
	}
	hour, okH := parseInt(parts[0], 2)
	minute, okM := parseInt(parts[1], 2)
	if !okH || !okM {
		return LocalTime{}, parseError("time", src)
	}
	second := 0
	if len(parts) == 3 {
		s, okS := parseInt(parts[2], 2)
		if !okS {
			return LocalTime{}, parseError("time", src)
		}
		second = s
	}
	return LocalTimeOfNano(hour, minute, second, nano)
}

// ParseLocalDateTime parses an ISO-8601 date-time such as
// "2021-03-14T10:15:30", with the date and time joined by 'T'.
func ParseLocalDateTime(src string) (LocalDateTime, error) {
	sep := strings.IndexByte(src, 'T')
	if sep < 0 {
		return LocalDateTime{}, parseError("date-time", src)
	}
	date, err := ParseLocalDate(src[:sep])
	if err != nil {
		return LocalDateTime{}, err
	}
	t, err := ParseLocalTime(src[sep+1:])
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: t}, nil
}

// ParseZoneOffset parses a UTC offset such as "Z", "+01:00", or
// "-05:30:30". Returns an error wrapping [ErrParse] on malformed text
// and [ErrField] on an offset beyond eighteen hours.
func ParseZoneOffset(src string) (ZoneOffset, error) {
	if src == "Z" || src == "z" {
		return UTC, nil
	}
	if len(src) < 6 {
		return ZoneOffset{}, parseError("offset", src)
	}
	sign := 0
	switch src[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return ZoneOffset{}, parseError("offset", src)
	}
	parts := strings.Split(src[1:], ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ZoneOffset{}, parseError("offset", src)
	}
	hours, okH := parseInt(parts[0], 2)
	minutes, okM := parseInt(parts[1], 2)
	if !okH || !okM {
		return ZoneOffset{}, parseError("offset", src)
	}
	seconds := 0
	if len(parts) == 3 {
		s, okS := parseInt(parts[2], 2)
		if !okS {
			return ZoneOffset{}, parseError("offset", src)
		}
		seconds = s
	}
	return ZoneOffsetOfTotalSeconds(sign * (hours*3_600 + minutes*60 + seconds))
}

// ParseOffsetDateTime parses an ISO-8601 date-time with offset such as
// "2021-03-14T10:15:30+01:00" or "2021-03-14T10:15:30Z".
func ParseOffsetDateTime(src string) (OffsetDateTime, error) {
	sep := strings.IndexByte(src, 'T')
	if sep < 0 {
		return OffsetDateTime{}, parseError("date-time", src)
	}
	// The offset starts at the first Z, +, or - after the T separator.
	cut := -1
	for i := sep + 1; i < len(src); i++ {
		if c := src[i]; c == 'Z' || c == 'z' || c == '+' || c == '-' {
			cut = i
			break
		}
	}
	if cut < 0 {
		return OffsetDateTime{}, parseError("date-time", src)
	}
	dt, err := ParseLocalDateTime(src[:cut])
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset, err := ParseZoneOffset(src[cut:])
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: dt, offset: offset}, nil
}
