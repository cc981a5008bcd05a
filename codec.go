package naivedate

import (
	"fmt"
	"time"
)

// parse extracts year, month and day from a string of exactly the form
// YYYY-MM-DD. Calendar validity is not checked.
func parse(s string) (Date, error) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return Date{}, fmt.Errorf("%q: %w", s, ErrMalformed)
	}
	year, ok1 := digits(s[0:4])
	month, ok2 := digits(s[5:7])
	day, ok3 := digits(s[8:10])
	if !ok1 || !ok2 || !ok3 {
		return Date{}, fmt.Errorf("%q: %w", s, ErrMalformed)
	}
	return Date{year: year, month: time.Month(month), day: day}, nil
}

// digits parses s as an unsigned decimal number made only of ASCII digits.
func digits(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// IsValid reports whether year, month and day name an existing day in the
// proleptic Gregorian calendar. The year is not checked against the supported
// range.
func IsValid(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, time.Month(month))
}

// IsValidString reports whether s is a YYYY-MM-DD string naming an existing day.
// Like IsValid it does not check the supported year range.
func IsValidString(s string) bool {
	d, err := parse(s)
	if err != nil {
		return false
	}
	return IsValid(d.year, int(d.month), d.day)
}

// ParseDate parses a canonical YYYY-MM-DD string. The errors returned wrap
// ErrMalformed, ErrInvalidDate or ErrOutOfRange.
func ParseDate(s string) (Date, error) {
	d, err := parse(s)
	if err != nil {
		return Date{}, err
	}
	return MakeDate(d.year, d.month, d.day)
}

// MustParseDate is like ParseDate but panics on error. It is intended for
// tests and package-level variables.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}
