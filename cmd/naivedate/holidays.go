package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/rabitt1ove/naivedate"
)

// Maximum holiday file size to prevent memory exhaustion.
const maxHolidaysFileSize = 5 * 1024 * 1024

// decoder wraps r to decode the named character encoding into UTF-8.
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return r, nil
	case "shift_jis", "shift-jis", "sjis":
		return transform.NewReader(r, japanese.ShiftJIS.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}

// normalizeDate accepts YYYY-MM-DD and the YYYY/M/D form used by government
// holiday lists, returning the canonical form.
func normalizeDate(s string) (string, error) {
	if !strings.Contains(s, "/") {
		d, err := naivedate.ParseDate(s)
		if err != nil {
			return "", err
		}
		return d.String(), nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("%q: %w", s, naivedate.ErrMalformed)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("%q: %w", s, naivedate.ErrMalformed)
		}
		n[i] = v
	}
	d, err := naivedate.MakeDate(n[0], time.Month(n[1]), n[2])
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// parseHolidays reads date,name rows. A first row whose date column does not
// parse is treated as a header; rows with an empty date or name are skipped.
func parseHolidays(r io.Reader) ([]naivedate.Holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var holidays []naivedate.Holiday
	lineNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := width.Narrow.String(strings.TrimSpace(record[0]))
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		date, err := normalizeDate(dateStr)
		if err != nil {
			if lineNum == 1 {
				continue
			}
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, dateStr, err)
		}
		holidays = append(holidays, naivedate.Holiday{Date: date, Name: name})
	}
	return holidays, nil
}

// readLimited reads all of r, failing if it holds more than limit bytes.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("file exceeds %d bytes", limit)
	}
	return data, nil
}

// loadHolidays registers the holidays listed in the CSV file at path.
func loadHolidays(cal *naivedate.Calendar, path, encoding string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	data, err := readLimited(f, maxHolidaysFileSize)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	r, err := decoder(bytes.NewReader(data), encoding)
	if err != nil {
		return 0, err
	}
	holidays, err := parseHolidays(r)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for _, h := range holidays {
		if err := cal.AddHoliday(h.Date, h.Name); err != nil {
			return 0, err
		}
	}
	return len(holidays), nil
}
