package naivedate

import "fmt"

// maxBusinessDaySearch bounds the scan for the next or previous business day.
const maxBusinessDaySearch = 366

func (c *Calendar) isBusinessDay(d Date) bool {
	if d.IsWeekend() {
		return false
	}
	_, holiday := c.lookup(d)
	return !holiday
}

// IsBusinessDay reports whether date is neither a weekend nor a holiday.
func (c *Calendar) IsBusinessDay(date string) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	return c.isBusinessDay(d), nil
}

// NextHoliday returns the first holiday strictly after date.
// It returns false if there is none or date is invalid.
func (c *Calendar) NextHoliday(date string) (Holiday, bool) {
	d, err := ParseDate(date)
	if err != nil {
		return Holiday{}, false
	}
	var best Date
	found := false

	c.mu.RLock()
	defer c.mu.RUnlock()
	for hd := range c.holidays {
		if hd.After(d) && (!found || hd.Before(best)) {
			best = hd
			found = true
		}
	}
	if !found {
		return Holiday{}, false
	}
	return Holiday{Date: best.String(), Name: c.holidays[best]}, true
}

// PreviousHoliday returns the last holiday strictly before date.
// It returns false if there is none or date is invalid.
func (c *Calendar) PreviousHoliday(date string) (Holiday, bool) {
	d, err := ParseDate(date)
	if err != nil {
		return Holiday{}, false
	}
	var best Date
	found := false

	c.mu.RLock()
	defer c.mu.RUnlock()
	for hd := range c.holidays {
		if hd.Before(d) && (!found || hd.After(best)) {
			best = hd
			found = true
		}
	}
	if !found {
		return Holiday{}, false
	}
	return Holiday{Date: best.String(), Name: c.holidays[best]}, true
}

// step walks from d in direction dir (+1 or -1) until a business day is
// found, including d itself.
func (c *Calendar) step(d Date, dir int) (Date, error) {
	n := d.ordinal()
	for i := 0; i < maxBusinessDaySearch; i++ {
		cur, err := fromOrdinal(n + dir*i)
		if err != nil {
			return Date{}, err
		}
		if c.isBusinessDay(cur) {
			return cur, nil
		}
	}
	return Date{}, fmt.Errorf("%s: within %d days: %w", d, maxBusinessDaySearch, ErrNoBusinessDay)
}

// NextBusinessDay returns the first business day on or after date.
func (c *Calendar) NextBusinessDay(date string) (string, error) {
	return apply(date, func(d Date) (Date, error) { return c.step(d, 1) })
}

// PreviousBusinessDay returns the last business day on or before date.
func (c *Calendar) PreviousBusinessDay(date string) (string, error) {
	return apply(date, func(d Date) (Date, error) { return c.step(d, -1) })
}

// BusinessDaysBetween counts the business days in [from, to] inclusive.
func (c *Calendar) BusinessDaysBetween(from, to string) (int, error) {
	f, t, err := parsePair(from, to)
	if err != nil {
		return 0, err
	}
	if t.Before(f) {
		return 0, fmt.Errorf("%s..%s: %w", from, to, ErrInvertedRange)
	}
	count := 0
	for d := range Days(f, t) {
		if c.isBusinessDay(d) {
			count++
		}
	}
	return count, nil
}

// AddBusinessDays moves n business days from date, forwards for positive n
// and backwards for negative n. Zero returns date unchanged even if it is
// not a business day.
func (c *Calendar) AddBusinessDays(date string, n int) (string, error) {
	return apply(date, func(d Date) (Date, error) {
		if n > supportedDays || n < -supportedDays {
			return Date{}, fmt.Errorf("%s%+d business days: %w", d, n, ErrOutOfRange)
		}
		dir := 1
		if n < 0 {
			dir, n = -1, -n
		}
		for ; n > 0; n-- {
			next, err := d.AddDays(dir)
			if err != nil {
				return Date{}, err
			}
			if d, err = c.step(next, dir); err != nil {
				return Date{}, err
			}
		}
		return d, nil
	})
}

// --- Package-level convenience functions ---

// IsBusinessDay reports whether date is a business day on the default calendar.
func IsBusinessDay(date string) (bool, error) { return defaultCal.IsBusinessDay(date) }

// NextHoliday returns the default calendar's first holiday after date.
func NextHoliday(date string) (Holiday, bool) { return defaultCal.NextHoliday(date) }

// PreviousHoliday returns the default calendar's last holiday before date.
func PreviousHoliday(date string) (Holiday, bool) { return defaultCal.PreviousHoliday(date) }

// NextBusinessDay returns the first business day on or after date.
func NextBusinessDay(date string) (string, error) { return defaultCal.NextBusinessDay(date) }

// PreviousBusinessDay returns the last business day on or before date.
func PreviousBusinessDay(date string) (string, error) {
	return defaultCal.PreviousBusinessDay(date)
}

// BusinessDaysBetween counts the business days in [from, to] on the default calendar.
func BusinessDaysBetween(from, to string) (int, error) {
	return defaultCal.BusinessDaysBetween(from, to)
}

// AddBusinessDays moves n business days from date on the default calendar.
func AddBusinessDays(date string, n int) (string, error) {
	return defaultCal.AddBusinessDays(date, n)
}
