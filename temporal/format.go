package temporal

import "strconv"

// ISO-8601 text rendering shared by the value types. Dates print a
// zero-padded four-digit year (more digits, with a leading sign, outside
// 0000-9999) and two-digit months, days, hours, minutes, and seconds.
// Fractional seconds print only when non-zero, trimmed of trailing zeros.

// appendPadded appends n zero-padded to the given width.
func appendPadded(b []byte, n, width int) []byte {
	s := strconv.Itoa(n)
	for pad := width - len(s); pad > 0; pad-- {
		b = append(b, '0')
	}
	return append(b, s...)
}

// appendYear appends a proleptic year: at least four digits, sign-prefixed
// when negative.
func appendYear(b []byte, year int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	}
	return appendPadded(b, year, 4)
}

// appendDate appends the YYYY-MM-DD form of d.
func appendDate(b []byte, d DateLike) []byte {
	b = appendYear(b, d.Year())
	b = append(b, '-')
	b = appendPadded(b, d.Month().Value(), 2)
	b = append(b, '-')
	return appendPadded(b, d.Day(), 2)
}

// appendTime appends the HH:MM:SS[.fraction] form of t.
func appendTime(b []byte, t TimeLike) []byte {
	b = appendPadded(b, t.Hour(), 2)
	b = append(b, ':')
	b = appendPadded(b, t.Minute(), 2)
	b = append(b, ':')
	b = appendPadded(b, t.Second(), 2)
	if nanos := t.Nanosecond(); nanos != 0 {
		b = append(b, '.')
		frac := strconv.AppendInt(make([]byte, 0, 10), int64(nanos)+nanosPerSecond, 10)
		b = append(b, trimZeros(frac[1:])...)
	}
	return b
}

// appendOffset appends the Z or ±HH:MM[:SS] form of off.
func appendOffset(b []byte, off ZoneOffset) []byte {
	total := off.TotalSeconds()
	if total == 0 {
		return append(b, 'Z')
	}
	if total < 0 {
		b = append(b, '-')
		total = -total
	} else {
		b = append(b, '+')
	}
	b = appendPadded(b, total/3_600, 2)
	b = append(b, ':')
	b = appendPadded(b, (total%3_600)/60, 2)
	if secs := total % 60; secs != 0 {
		b = append(b, ':')
		b = appendPadded(b, secs, 2)
	}
	return b
}
