// Command naivedate performs calendar date arithmetic, lookups and prefix
// completion on YYYY-MM-DD dates.
//
// Usage:
//
//	naivedate [flags] <command> [arguments]
//
// Commands:
//
//	complete PREFIX          list dates starting with PREFIX
//	add DATE N [UNIT]        add N days, months, years or business days
//	sub DATE N [UNIT]        subtract N units
//	diff FROM TO             days from FROM to TO
//	compare A B              -1, 0 or 1
//	range FROM TO            every date from FROM to TO inclusive
//	info DATE                weekday, quarter, ISO week and other details
//	format DATE [PATTERN]    render DATE with PATTERN (default -format)
//	valid DATE               report whether DATE exists
//	today, yesterday, tomorrow
//	business FROM TO         business days from FROM to TO inclusive
//	holidays [FROM TO]       list holidays loaded with -holidays
//
// Settings are read from NAIVEDATE_* environment variables, optionally
// loaded from the file named by NAIVEDATE_ENV_FILE (default .env).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/text/width"

	"github.com/rabitt1ove/naivedate"
	"github.com/rabitt1ove/naivedate/metrics"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	envFile := os.Getenv("NAIVEDATE_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadDotEnv(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "naivedate: %v\n", err)
		os.Exit(exitUsage)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

type app struct {
	cfg    config
	cal    *naivedate.Calendar
	cache  *naivedate.Cache
	logger *slog.Logger
	out    io.Writer
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, err := loadConfig(getenv)
	if err != nil {
		fmt.Fprintf(stderr, "naivedate: %v\n", err)
		return exitUsage
	}

	fs := flag.NewFlagSet("naivedate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output `pattern` for dates, e.g. \"dddd, MMMM D, YYYY\"")
	fs.IntVar(&cfg.CacheSize, "cache-size", cfg.CacheSize, "completion cache capacity in years")
	fs.StringVar(&cfg.HolidaysFile, "holidays", cfg.HolidaysFile, "CSV `file` of date,name holiday rows")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "holiday file encoding: utf-8 or shift_jis")
	fs.TextVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log `level`: debug, info, warn or error")
	fs.BoolVar(&cfg.Human, "human", cfg.Human, "print day counts with thousands separators")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "write completion cache metrics to stderr on exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: naivedate [flags] <command> [arguments]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}
	if _, err := naivedate.Format("2000-01-01", cfg.Format); err != nil {
		fmt.Fprintf(stderr, "naivedate: -format: %v\n", err)
		return exitUsage
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	cache := naivedate.NewCache(cfg.CacheSize)
	opts := []naivedate.Option{naivedate.WithCache(cache), naivedate.WithLogger(logger)}
	if cfg.Today != "" {
		today := naivedate.MustParseDate(cfg.Today)
		opts = append(opts, naivedate.WithClock(naivedate.ClockFunc(func() time.Time {
			return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		})))
	}
	a := &app{
		cfg:    cfg,
		cal:    naivedate.New(opts...),
		cache:  cache,
		logger: logger,
		out:    stdout,
	}

	if cfg.HolidaysFile != "" {
		n, err := loadHolidays(a.cal, cfg.HolidaysFile, cfg.Encoding)
		if err != nil {
			logger.Error("loading holidays", "file", cfg.HolidaysFile, "error", err)
			return exitFail
		}
		logger.Info("loaded holidays", "file", cfg.HolidaysFile, "count", n)
	}

	cmd, cmdArgs := fs.Arg(0), normalize(fs.Args()[1:])
	code := a.dispatch(cmd, cmdArgs)
	if code == exitUsage {
		fs.Usage()
	}
	if cfg.Metrics {
		if err := writeMetrics(stderr, cache); err != nil {
			logger.Error("writing metrics", "error", err)
		}
	}
	return code
}

// normalize trims arguments and narrows full-width characters such as
// "２０２４－０１－０１" typed through an input method.
func normalize(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = width.Narrow.String(strings.TrimSpace(arg))
	}
	return out
}

func (a *app) dispatch(cmd string, args []string) int {
	var err error
	switch cmd {
	case "complete":
		err = a.complete(args)
	case "add":
		err = a.add(args, 1)
	case "sub":
		err = a.add(args, -1)
	case "diff":
		err = a.diff(args)
	case "compare":
		err = a.compare(args)
	case "range":
		err = a.rangeDates(args)
	case "info":
		err = a.info(args)
	case "format":
		err = a.format(args)
	case "valid":
		return a.valid(args)
	case "today":
		err = a.printDate(a.cal.Today())
	case "yesterday":
		err = a.printDate(a.cal.Yesterday())
	case "tomorrow":
		err = a.printDate(a.cal.Tomorrow())
	case "business":
		err = a.business(args)
	case "holidays":
		err = a.holidays(args)
	default:
		a.logger.Error("unknown command", "command", cmd)
		return exitUsage
	}
	switch {
	case errors.Is(err, errUsage):
		a.logger.Error("wrong arguments", "command", cmd, "args", args)
		return exitUsage
	case err != nil:
		a.logger.Error("command failed", "command", cmd, "error", err)
		return exitFail
	}
	return exitOK
}

func wantArgs(args []string, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return errUsage
	}
	return nil
}

// render applies the configured output pattern to a canonical date.
func (a *app) render(date string) (string, error) {
	if a.cfg.Format == canonicalPattern {
		return date, nil
	}
	return naivedate.Format(date, a.cfg.Format)
}

func (a *app) printDate(date string) error {
	s, err := a.render(date)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

func (a *app) printDays(n int) error {
	if a.cfg.Human {
		_, err := fmt.Fprintf(a.out, "%s days\n", humanize.Comma(int64(n)))
		return err
	}
	_, err := fmt.Fprintln(a.out, n)
	return err
}

func (a *app) complete(args []string) error {
	if err := wantArgs(args, 1, 1); err != nil {
		return err
	}
	for _, d := range a.cal.Complete(args[0]) {
		if _, err := fmt.Fprintln(a.out, d); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) add(args []string, sign int) error {
	if err := wantArgs(args, 2, 3); err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("count %q: %w", args[1], err)
	}
	n *= sign
	unit := "days"
	if len(args) == 3 {
		unit = strings.ToLower(args[2])
	}
	var result string
	switch unit {
	case "d", "day", "days":
		result, err = naivedate.AddDays(args[0], n)
	case "m", "month", "months":
		result, err = naivedate.AddMonths(args[0], n)
	case "y", "year", "years":
		result, err = naivedate.AddYears(args[0], n)
	case "b", "business":
		result, err = a.cal.AddBusinessDays(args[0], n)
	default:
		return fmt.Errorf("unknown unit %q", unit)
	}
	if err != nil {
		return err
	}
	return a.printDate(result)
}

func (a *app) diff(args []string) error {
	if err := wantArgs(args, 2, 2); err != nil {
		return err
	}
	n, err := naivedate.DiffDays(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printDays(n)
}

func (a *app) compare(args []string) error {
	if err := wantArgs(args, 2, 2); err != nil {
		return err
	}
	c, err := naivedate.Compare(args[0], args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, c)
	return err
}

func (a *app) rangeDates(args []string) error {
	if err := wantArgs(args, 2, 2); err != nil {
		return err
	}
	dates, err := naivedate.Range(args[0], args[1])
	if err != nil {
		return err
	}
	for _, d := range dates {
		if err := a.printDate(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) info(args []string) error {
	if err := wantArgs(args, 1, 1); err != nil {
		return err
	}
	d, err := naivedate.ParseDate(args[0])
	if err != nil {
		return err
	}
	isoYear, isoWeek := d.ISOWeek()
	business, err := a.cal.IsBusinessDay(d.String())
	if err != nil {
		return err
	}
	rows := []struct {
		key   string
		value any
	}{
		{"date", d},
		{"weekday", d.Weekday()},
		{"weekend", d.IsWeekend()},
		{"business-day", business},
		{"holiday", a.cal.HolidayName(d.String())},
		{"month", d.Month()},
		{"quarter", d.Quarter()},
		{"day-of-year", d.DayOfYear()},
		{"iso-week", fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)},
		{"start-of-month", d.StartOfMonth()},
		{"end-of-month", d.EndOfMonth()},
		{"leap-year", naivedate.IsLeapYear(d.Year())},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(a.out, "%-15s %v\n", r.key+":", r.value); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) format(args []string) error {
	if err := wantArgs(args, 1, 2); err != nil {
		return err
	}
	pattern := a.cfg.Format
	if len(args) == 2 {
		pattern = args[1]
	}
	s, err := naivedate.Format(args[0], pattern)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

func (a *app) valid(args []string) int {
	if len(args) != 1 {
		return exitUsage
	}
	ok := naivedate.IsValidString(args[0])
	if _, err := fmt.Fprintln(a.out, ok); err != nil {
		a.logger.Error("command failed", "command", "valid", "error", err)
		return exitFail
	}
	if !ok {
		return exitFail
	}
	return exitOK
}

func (a *app) business(args []string) error {
	if err := wantArgs(args, 2, 2); err != nil {
		return err
	}
	n, err := a.cal.BusinessDaysBetween(args[0], args[1])
	if err != nil {
		return err
	}
	return a.printDays(n)
}

func (a *app) holidays(args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return errUsage
	}
	holidays := a.cal.Holidays()
	if len(args) == 2 {
		var err error
		if holidays, err = a.cal.HolidaysBetween(args[0], args[1]); err != nil {
			return err
		}
	}
	for _, h := range holidays {
		date, err := a.render(h.Date)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.out, "%s\t%s\n", date, h.Name); err != nil {
			return err
		}
	}
	return nil
}

// writeMetrics writes the completion cache metrics in the Prometheus text
// exposition format.
func writeMetrics(w io.Writer, cache *naivedate.Cache) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(metrics.NewCacheCollector("naivedate", cache)); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
