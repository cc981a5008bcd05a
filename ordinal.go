package naivedate

import (
	"fmt"
	"time"
)

// Dates are mapped to their Julian Day Number, a continuous day count in
// which consecutive days differ by one. The conversions below use integer
// arithmetic only and are exact for all positive years.

var (
	minOrdinal = julianDay(MinYear, time.January, 1)
	maxOrdinal = julianDay(MaxYear, time.December, 31)
)

func julianDay(year int, month time.Month, day int) int {
	m := int(month)
	a := (m - 14) / 12
	return day - 32075 +
		1461*(year+4800+a)/4 +
		367*(m-2-a*12)/12 -
		3*((year+4900+a)/100)/4
}

func (d Date) ordinal() int {
	return julianDay(d.year, d.month, d.day)
}

// civil converts a Julian Day Number back to a Date without checking the
// supported range.
func civil(n int) Date {
	l := n + 68569
	k := 4 * l / 146097
	l -= (146097*k + 3) / 4
	y := 4000 * (l + 1) / 1461001
	l = l - 1461*y/4 + 31
	m := 80 * l / 2447
	day := l - 2447*m/80
	l = m / 11
	m = m + 2 - 12*l
	y = 100*(k-49) + y + l
	return Date{year: y, month: time.Month(m), day: day}
}

func fromOrdinal(n int) (Date, error) {
	if n < minOrdinal || n > maxOrdinal {
		return Date{}, fmt.Errorf("%s: %w", civil(n), ErrOutOfRange)
	}
	return civil(n), nil
}

// weekday returns the day of the week for a Julian Day Number; JDN 0 is a Monday.
func weekday(n int) time.Weekday {
	return time.Weekday((n + 1) % 7)
}
