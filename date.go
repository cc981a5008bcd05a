package naivedate

import (
	"fmt"
	"time"
)

// Supported year range. Dates outside it are rejected by every operation
// except IsValid and IsValidString.
const (
	MinYear = 1900
	MaxYear = 2100
)

// Date is a calendar date with no time of day and no location.
// The zero value is not a valid date; obtain one with [MakeDate] or [ParseDate].
// Methods called on the zero Date do not panic, but their results are
// meaningless; arithmetic and ranges over it fail with [ErrOutOfRange] or
// [ErrInvalidDate].
// Dates are comparable and may be used as map keys.
type Date struct {
	year  int
	month time.Month
	day   int
}

// MakeDate returns the Date for the given year, month and day. It fails with
// [ErrInvalidDate] if the day does not exist in that month and with
// [ErrOutOfRange] if the year is outside [MinYear, MaxYear].
func MakeDate(year int, month time.Month, day int) (Date, error) {
	if !IsValid(year, int(month), day) {
		return Date{}, fmt.Errorf("%04d-%02d-%02d: %w", year, int(month), day, ErrInvalidDate)
	}
	if year < MinYear || year > MaxYear {
		return Date{}, fmt.Errorf("%04d-%02d-%02d: %w", year, int(month), day, ErrOutOfRange)
	}
	return Date{year: year, month: month, day: day}, nil
}

// Year returns the year of d.
func (d Date) Year() int { return d.year }

// Month returns the month of d.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month of d.
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// String returns d in canonical YYYY-MM-DD form.
func (d Date) String() string {
	var buf [10]byte
	putCanonical(buf[:], d.year, int(d.month), d.day)
	return string(buf[:])
}

func putCanonical(buf []byte, year, month, day int) {
	buf[0] = byte('0' + year/1000%10)
	buf[1] = byte('0' + year/100%10)
	buf[2] = byte('0' + year/10%10)
	buf[3] = byte('0' + year%10)
	buf[4] = '-'
	buf[5] = byte('0' + month/10)
	buf[6] = byte('0' + month%10)
	buf[7] = '-'
	buf[8] = byte('0' + day/10)
	buf[9] = byte('0' + day%10)
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	if d.year != other.year {
		return d.year < other.year
	}
	if d.month != other.month {
		return d.month < other.month
	}
	return d.day < other.day
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Compare returns -1 if d is before other, 0 if they are equal and +1 if d is
// after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other):
		return -1
	case other.Before(d):
		return 1
	}
	return 0
}

// supported reports whether d is a real date within [MinYear, MaxYear]. It is
// false for the zero Date.
func (d Date) supported() bool {
	return d.year >= MinYear && d.year <= MaxYear && IsValid(d.year, int(d.month), d.day)
}

func (d Date) inRange(from, to Date) bool {
	return !d.Before(from) && !to.Before(d)
}
