package naivedate

import "time"

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return weekday(d.ordinal())
}

// IsWeekend reports whether d falls on a Saturday or Sunday.
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Quarter returns the quarter of the year, 1-4.
func (d Date) Quarter() int {
	return (int(d.month)-1)/3 + 1
}

// DayOfYear returns the day of the year, 1-365 or 1-366 in leap years. It
// returns 0 for the zero Date.
func (d Date) DayOfYear() int {
	if d.month < time.January || d.month > time.December {
		return 0
	}
	return daysBeforeMonth(d.year, d.month) + d.day
}

// ISOWeek returns the ISO 8601 year and week number of d. Weeks start on
// Monday and week 1 is the week containing the year's first Thursday, so the
// ISO year may differ from d.Year() in early January and late December.
func (d Date) ISOWeek() (year, week int) {
	n := d.ordinal()
	thursday := n - isoWeekday(n) + 4
	year = civil(thursday).year
	week = (thursday-julianDay(year, time.January, 1))/7 + 1
	return year, week
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(n int) int {
	return n%7 + 1
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	return Date{year: d.year, month: d.month, day: 1}
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return Date{year: d.year, month: d.month, day: DaysInMonth(d.year, d.month)}
}

func lookup[T any](s string, fn func(Date) T) (T, error) {
	d, err := ParseDate(s)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(d), nil
}

// Weekday returns the English name of the day of the week of date.
func Weekday(date string) (string, error) {
	return lookup(date, func(d Date) string { return d.Weekday().String() })
}

// IsWeekend reports whether date falls on a Saturday or Sunday.
func IsWeekend(date string) (bool, error) {
	return lookup(date, Date.IsWeekend)
}

// Quarter returns the quarter of the year of date, 1-4.
func Quarter(date string) (int, error) {
	return lookup(date, Date.Quarter)
}

// MonthName returns the English name of the month of date.
func MonthName(date string) (string, error) {
	return lookup(date, func(d Date) string { return d.month.String() })
}

// DayOfYear returns the day of the year of date.
func DayOfYear(date string) (int, error) {
	return lookup(date, Date.DayOfYear)
}

// ISOWeek returns the ISO 8601 week number of date, 1-53.
func ISOWeek(date string) (int, error) {
	return lookup(date, func(d Date) int {
		_, w := d.ISOWeek()
		return w
	})
}

// StartOfMonth returns the first day of the month of date.
func StartOfMonth(date string) (string, error) {
	return lookup(date, func(d Date) string { return d.StartOfMonth().String() })
}

// EndOfMonth returns the last day of the month of date.
func EndOfMonth(date string) (string, error) {
	return lookup(date, func(d Date) string { return d.EndOfMonth().String() })
}
