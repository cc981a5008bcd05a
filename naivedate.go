// Package naivedate provides calendar date arithmetic over ISO 8601
// YYYY-MM-DD strings, without time of day or time zones.
//
// All dates use the proleptic Gregorian calendar and are limited to the
// years 1900 through 2100. Day arithmetic is done on Julian Day Numbers, so
// results never depend on the host clock or location.
//
// Basic usage with package-level functions:
//
//	naivedate.AddMonths("2024-01-31", 1)  // "2024-02-29", nil
//	naivedate.DiffDays("2024-01-01", "2024-12-31") // 365, nil
//	naivedate.Weekday("2024-01-01")       // "Monday", nil
//	naivedate.Complete("2024-01-1")       // ["2024-01-10" ... "2024-01-19"]
//
// Completion results are memoized per year in a [Cache]. For an isolated
// cache, clock or holiday set create a Calendar instance:
//
//	cal := naivedate.New(naivedate.WithCache(naivedate.NewCache(8)))
//	cal.AddHoliday("2024-12-25", "Christmas Day")
package naivedate

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Holiday is a custom non-business day registered on a Calendar.
type Holiday struct {
	Date string // Canonical YYYY-MM-DD date.
	Name string
}

// Calendar owns the mutable state used by completion, business day and
// today/tomorrow lookups: a completion cache, a clock and a set of holidays.
// Create one with [New]. All methods are safe for concurrent use.
type Calendar struct {
	cache  *Cache
	clock  Clock
	logger *slog.Logger
	group  singleflight.Group

	mu       sync.RWMutex
	holidays map[Date]string
}

// Option configures a Calendar.
type Option func(*Calendar)

// WithCache sets the completion cache. A nil cache disables caching.
func WithCache(cache *Cache) Option {
	return func(c *Calendar) { c.cache = cache }
}

// WithClock sets the clock used by Today, Yesterday and Tomorrow.
func WithClock(clock Clock) Option {
	return func(c *Calendar) { c.clock = clock }
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Calendar) { c.logger = logger }
}

// New creates a Calendar with a cache of DefaultCacheCapacity years, the
// system clock and no holidays.
func New(opts ...Option) *Calendar {
	c := &Calendar{
		cache:    NewCache(DefaultCacheCapacity),
		clock:    SystemClock,
		logger:   slog.New(slog.DiscardHandler),
		holidays: make(map[Date]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Cache returns the completion cache of c, which may be nil.
func (c *Calendar) Cache() *Cache {
	return c.cache
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// Default returns the package-level Calendar.
func Default() *Calendar { return defaultCal }

func (c *Calendar) lookup(d Date) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	name, ok := c.holidays[d]
	return name, ok
}

// AddHoliday registers a holiday on date, replacing any existing holiday on
// that date.
func (c *Calendar) AddHoliday(date, name string) error {
	d, err := ParseDate(date)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holidays[d] = name
	return nil
}

// RemoveHoliday removes the holiday on date. It has no effect if there is
// none or date is invalid.
func (c *Calendar) RemoveHoliday(date string) {
	d, err := ParseDate(date)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.holidays, d)
}

// IsHoliday reports whether a holiday is registered on date.
func (c *Calendar) IsHoliday(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	_, ok := c.lookup(d)
	return ok
}

// HolidayName returns the name of the holiday on date, or an empty string.
func (c *Calendar) HolidayName(date string) string {
	d, err := ParseDate(date)
	if err != nil {
		return ""
	}
	name, _ := c.lookup(d)
	return name
}

// Holidays returns all registered holidays sorted by date.
func (c *Calendar) Holidays() []Holiday {
	return c.holidaysIn(Date{year: MinYear, month: 1, day: 1}, Date{year: MaxYear, month: 12, day: 31})
}

// HolidaysBetween returns the holidays in [from, to] inclusive, sorted by date.
func (c *Calendar) HolidaysBetween(from, to string) ([]Holiday, error) {
	f, t, err := parsePair(from, to)
	if err != nil {
		return nil, err
	}
	if t.Before(f) {
		return nil, fmt.Errorf("%s..%s: %w", from, to, ErrInvertedRange)
	}
	return c.holidaysIn(f, t), nil
}

func (c *Calendar) holidaysIn(from, to Date) []Holiday {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var dates []Date
	for d := range c.holidays {
		if d.inRange(from, to) {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	result := make([]Holiday, len(dates))
	for i, d := range dates {
		result[i] = Holiday{Date: d.String(), Name: c.holidays[d]}
	}
	return result
}

// --- Package-level convenience functions ---

// Complete returns the canonical dates starting with prefix using the
// default calendar.
func Complete(prefix string) []string { return defaultCal.Complete(prefix) }

// AddHoliday registers a holiday on the default calendar.
func AddHoliday(date, name string) error { return defaultCal.AddHoliday(date, name) }

// RemoveHoliday removes a holiday from the default calendar.
func RemoveHoliday(date string) { defaultCal.RemoveHoliday(date) }

// IsHoliday reports whether the default calendar has a holiday on date.
func IsHoliday(date string) bool { return defaultCal.IsHoliday(date) }

// HolidayName returns the name of the default calendar's holiday on date, or "".
func HolidayName(date string) string { return defaultCal.HolidayName(date) }

// Holidays returns the default calendar's holidays sorted by date.
func Holidays() []Holiday { return defaultCal.Holidays() }

// HolidaysBetween returns the default calendar's holidays in [from, to].
func HolidaysBetween(from, to string) ([]Holiday, error) {
	return defaultCal.HolidaysBetween(from, to)
}
