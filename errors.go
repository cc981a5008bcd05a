package naivedate

import "errors"

var (
	// ErrMalformed is returned when a string is not in YYYY-MM-DD form.
	ErrMalformed = errors.New("malformed date")

	// ErrInvalidDate is returned for a well-formed date that does not exist,
	// such as 2023-02-29.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrOutOfRange is returned when an operand or result lies outside the
	// supported years.
	ErrOutOfRange = errors.New("date out of supported range")

	// ErrInvertedRange is returned when the end of a range precedes its start.
	ErrInvertedRange = errors.New("range end precedes start")

	// ErrUnknownToken is returned by Format for an unsupported pattern token.
	ErrUnknownToken = errors.New("unknown format token")

	// ErrUnsupportedPrefix is used internally by completion for prefixes that
	// are not a year, year-month or year-month-day prefix.
	ErrUnsupportedPrefix = errors.New("unsupported date prefix")

	// ErrNoBusinessDay is returned when no business day is found within the
	// search window.
	ErrNoBusinessDay = errors.New("no business day found")
)
