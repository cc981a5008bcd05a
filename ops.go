package naivedate

import (
	"fmt"
	"iter"
	"time"
)

const (
	supportedDays   = (MaxYear - MinYear + 1) * 366
	supportedMonths = (MaxYear - MinYear + 1) * 12
	supportedYears  = MaxYear - MinYear + 1
)

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) (Date, error) {
	if n > supportedDays || n < -supportedDays {
		return Date{}, fmt.Errorf("%s%+d days: %w", d, n, ErrOutOfRange)
	}
	return fromOrdinal(d.ordinal() + n)
}

// AddMonths returns the date n months after d; n may be negative. If the
// day does not exist in the target month it is clamped to the last day of
// that month, so 2024-01-31 plus one month is 2024-02-29.
func (d Date) AddMonths(n int) (Date, error) {
	if n > supportedMonths || n < -supportedMonths {
		return Date{}, fmt.Errorf("%s%+d months: %w", d, n, ErrOutOfRange)
	}
	total := d.year*12 + int(d.month) - 1 + n
	year, month := floorDiv(total, 12), time.Month(floorMod(total, 12)+1)
	day := min(d.day, DaysInMonth(year, month))
	return MakeDate(year, month, day)
}

// AddYears returns the date n years after d. February 29 becomes February 28
// when the target year is not a leap year.
func (d Date) AddYears(n int) (Date, error) {
	if n > supportedYears || n < -supportedYears {
		return Date{}, fmt.Errorf("%s%+d years: %w", d, n, ErrOutOfRange)
	}
	year := d.year + n
	day := d.day
	if d.month == time.February && day == 29 && !IsLeapYear(year) {
		day = 28
	}
	return MakeDate(year, d.month, day)
}

// DaysUntil returns the number of days from d to other, negative if other is
// before d.
func (d Date) DaysUntil(other Date) int {
	return other.ordinal() - d.ordinal()
}

// Days returns an iterator over the dates from..to inclusive, in ascending
// order. It yields nothing if to is before from or either bound is not a
// supported date.
func Days(from, to Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !from.supported() || !to.supported() {
			return
		}
		end := to.ordinal()
		for n := from.ordinal(); n <= end; n++ {
			if !yield(civil(n)) {
				return
			}
		}
	}
}

// Between returns the dates from..to inclusive, in ascending order.
func Between(from, to Date) ([]Date, error) {
	if !from.supported() || !to.supported() {
		return nil, fmt.Errorf("%s..%s: %w", from, to, ErrOutOfRange)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%s..%s: %w", from, to, ErrInvertedRange)
	}
	out := make([]Date, 0, from.DaysUntil(to)+1)
	for d := range Days(from, to) {
		out = append(out, d)
	}
	return out, nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// --- String API ---
//
// The functions below accept and return canonical YYYY-MM-DD strings and
// report failures through the returned error.

func apply(s string, op func(Date) (Date, error)) (string, error) {
	d, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	r, err := op(d)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func parsePair(s1, s2 string) (Date, Date, error) {
	d1, err := ParseDate(s1)
	if err != nil {
		return Date{}, Date{}, err
	}
	d2, err := ParseDate(s2)
	if err != nil {
		return Date{}, Date{}, err
	}
	return d1, d2, nil
}

// AddDays returns the date n days after date.
func AddDays(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) { return d.AddDays(n) })
}

// SubtractDays returns the date n days before date.
func SubtractDays(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) { return d.AddDays(-n) })
}

// AddMonths returns the date n months after date, clamping the day to the
// end of the target month.
func AddMonths(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) { return d.AddMonths(n) })
}

// SubtractMonths returns the date n months before date.
func SubtractMonths(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) { return d.AddMonths(-n) })
}

// AddYears returns the date n years after date.
func AddYears(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) { return d.AddYears(n) })
}

// DiffDays returns the number of days from d1 to d2, positive when d2 is later.
func DiffDays(d1, d2 string) (int, error) {
	a, b, err := parsePair(d1, d2)
	if err != nil {
		return 0, err
	}
	return a.DaysUntil(b), nil
}

// Compare returns -1 if d1 precedes d2, 0 if they are equal and +1 if d1
// follows d2.
func Compare(d1, d2 string) (int, error) {
	a, b, err := parsePair(d1, d2)
	if err != nil {
		return 0, err
	}
	return a.Compare(b), nil
}

// IsBefore reports whether d1 precedes d2. It returns false if either date
// is invalid.
func IsBefore(d1, d2 string) bool {
	c, err := Compare(d1, d2)
	return err == nil && c < 0
}

// IsAfter reports whether d1 follows d2. It returns false if either date is
// invalid.
func IsAfter(d1, d2 string) bool {
	c, err := Compare(d1, d2)
	return err == nil && c > 0
}

// Range returns the canonical dates from..to inclusive, in ascending order.
// It fails with ErrInvertedRange if to precedes from.
func Range(from, to string) ([]string, error) {
	a, b, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}
	if b.Before(a) {
		return nil, fmt.Errorf("%s..%s: %w", from, to, ErrInvertedRange)
	}
	out := make([]string, 0, a.DaysUntil(b)+1)
	for d := range Days(a, b) {
		out = append(out, d.String())
	}
	return out, nil
}
