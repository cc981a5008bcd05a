package naivedate

import "time"

// Clock reports the current time. Only its calendar date in its own
// location is used.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the host's local time.
var SystemClock Clock = ClockFunc(time.Now)

func (c *Calendar) today() Date {
	y, m, d := c.clock.Now().Date()
	return Date{year: y, month: m, day: d}
}

// Today returns the current date according to the calendar's clock.
func (c *Calendar) Today() string {
	return c.today().String()
}

// Yesterday returns the day before Today.
func (c *Calendar) Yesterday() string {
	return civil(c.today().ordinal() - 1).String()
}

// Tomorrow returns the day after Today.
func (c *Calendar) Tomorrow() string {
	return civil(c.today().ordinal() + 1).String()
}

// Today returns the current local date.
func Today() string { return defaultCal.Today() }

// Yesterday returns the day before the current local date.
func Yesterday() string { return defaultCal.Yesterday() }

// Tomorrow returns the day after the current local date.
func Tomorrow() string { return defaultCal.Tomorrow() }
