package naivedate

import (
	"fmt"
	"strconv"
	"strings"
)

// Format tokens understood by [Date.Format]. A token is a run of the same
// ASCII letter; all other characters are copied through unchanged and text
// enclosed in square brackets is copied verbatim.
//
//	YYYY  year, 4 digits          YY    year, 2 digits
//	M     month                   MM    month, 2 digits
//	MMM   month name, "Jan"       MMMM  month name, "January"
//	D     day                     DD    day, 2 digits
//	ddd   weekday name, "Mon"     dddd  weekday name, "Monday"
//	Q     quarter                 W, WW ISO week
var formatTokens = map[string]func(d Date) string{
	"YYYY": func(d Date) string { return pad(d.year, 4) },
	"YY":   func(d Date) string { return pad(d.year%100, 2) },
	"M":    func(d Date) string { return strconv.Itoa(int(d.month)) },
	"MM":   func(d Date) string { return pad(int(d.month), 2) },
	"MMM":  func(d Date) string { return d.month.String()[:3] },
	"MMMM": func(d Date) string { return d.month.String() },
	"D":    func(d Date) string { return strconv.Itoa(d.day) },
	"DD":   func(d Date) string { return pad(d.day, 2) },
	"ddd":  func(d Date) string { return d.Weekday().String()[:3] },
	"dddd": func(d Date) string { return d.Weekday().String() },
	"Q":    func(d Date) string { return strconv.Itoa(d.Quarter()) },
	"W": func(d Date) string {
		_, w := d.ISOWeek()
		return strconv.Itoa(w)
	},
	"WW": func(d Date) string {
		_, w := d.ISOWeek()
		return pad(w, 2)
	},
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Format renders d according to pattern. It fails with ErrUnknownToken if
// pattern contains a letter run that is not a supported token or an
// unterminated literal.
func (d Date) Format(pattern string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c == '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return "", fmt.Errorf("unterminated literal at offset %d in %q: %w", i, pattern, ErrUnknownToken)
			}
			out.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
		case isLetter(c):
			j := i + 1
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			fn, ok := formatTokens[pattern[i:j]]
			if !ok {
				return "", fmt.Errorf("%q in %q: %w", pattern[i:j], pattern, ErrUnknownToken)
			}
			out.WriteString(fn(d))
			i = j
		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String(), nil
}

// Format renders date according to pattern; see [Date.Format].
func Format(date, pattern string) (string, error) {
	d, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return d.Format(pattern)
}
