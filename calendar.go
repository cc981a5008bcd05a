package naivedate

import "time"

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// cumulative days before the first of each month in a non-leap year.
var daysBefore = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year, or 0 if
// month is not in 1-12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// daysBeforeMonth returns the number of days in year preceding the first of month.
func daysBeforeMonth(year int, month time.Month) int {
	n := daysBefore[month-1]
	if month > time.February && IsLeapYear(year) {
		n++
	}
	return n
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}
