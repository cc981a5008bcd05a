package naivedate

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// scope is the year, and optionally the month, a completion prefix resolves to.
// A zero month means the whole year.
type scope struct {
	year  int
	month time.Month
}

// resolvePrefix accepts YYYY, YYYY-MM, YYYY-MM-D and YYYY-MM-DD.
func resolvePrefix(prefix string) (scope, error) {
	var s scope
	switch len(prefix) {
	case 4, 7, 9, 10:
	default:
		return s, fmt.Errorf("%q: %w", prefix, ErrUnsupportedPrefix)
	}
	year, ok := digits(prefix[:4])
	if !ok {
		return s, fmt.Errorf("%q: %w", prefix, ErrUnsupportedPrefix)
	}
	if year < MinYear || year > MaxYear {
		return s, fmt.Errorf("%q: %w", prefix, ErrOutOfRange)
	}
	s.year = year
	if len(prefix) == 4 {
		return s, nil
	}
	month, ok := digits(prefix[5:7])
	if prefix[4] != '-' || !ok {
		return s, fmt.Errorf("%q: %w", prefix, ErrUnsupportedPrefix)
	}
	if month < 1 || month > 12 {
		return s, fmt.Errorf("%q: %w", prefix, ErrInvalidDate)
	}
	s.month = time.Month(month)
	if len(prefix) == 7 {
		return s, nil
	}
	if _, ok := digits(prefix[8:]); prefix[7] != '-' || !ok {
		return s, fmt.Errorf("%q: %w", prefix, ErrUnsupportedPrefix)
	}
	return s, nil
}

// yearDays returns the canonical strings of every day of year, in order.
func yearDays(year int) []string {
	days := make([]string, 0, daysInYear(year))
	for m := time.January; m <= time.December; m++ {
		for d := 1; d <= DaysInMonth(year, m); d++ {
			days = append(days, Date{year: year, month: m, day: d}.String())
		}
	}
	return days
}

// days returns the days of year, from the cache when possible. The returned
// slice is shared and must not be modified.
func (c *Calendar) days(year int) []string {
	if days, ok := c.cache.get(year); ok {
		return days
	}
	v, _, _ := c.group.Do(strconv.Itoa(year), func() (any, error) {
		days := yearDays(year)
		if c.cache.put(year, days) {
			c.logger.Debug("completion cache cleared", slog.Int("capacity", c.cache.Stats().Capacity))
		}
		c.logger.Debug("generated completion year", slog.Int("year", year))
		return days, nil
	})
	return v.([]string)
}

// Complete returns every canonical date string that starts with prefix, in
// ascending order. The prefix must be a year (2024), a year and month
// (2024-01) or a year, month and partial day (2024-01-1); anything else,
// including years outside [MinYear, MaxYear], yields an empty result.
func (c *Calendar) Complete(prefix string) []string {
	s, err := resolvePrefix(prefix)
	if err != nil {
		c.logger.Debug("completion prefix rejected", slog.String("prefix", prefix), slog.Any("error", err))
		return nil
	}
	candidates := c.days(s.year)
	if s.month != 0 {
		start := daysBeforeMonth(s.year, s.month)
		candidates = candidates[start : start+DaysInMonth(s.year, s.month)]
	}
	out := make([]string, 0, len(candidates))
	for _, d := range candidates {
		if strings.HasPrefix(d, prefix) {
			out = append(out, d)
		}
	}
	return out
}
