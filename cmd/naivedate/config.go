package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rabitt1ove/naivedate"
)

const canonicalPattern = "YYYY-MM-DD"

// config holds settings read from NAIVEDATE_* environment variables; flags
// override them.
type config struct {
	Format       string     // NAIVEDATE_FORMAT
	CacheSize    int        // NAIVEDATE_CACHE_SIZE
	HolidaysFile string     // NAIVEDATE_HOLIDAYS
	Encoding     string     // NAIVEDATE_ENCODING
	LogLevel     slog.Level // NAIVEDATE_LOG_LEVEL
	Today        string     // NAIVEDATE_TODAY pins the current date.
	Human        bool
	Metrics      bool
}

func loadConfig(getenv func(string) string) (config, error) {
	cfg := config{
		Format:    canonicalPattern,
		CacheSize: naivedate.DefaultCacheCapacity,
		Encoding:  "utf-8",
		LogLevel:  slog.LevelWarn,
	}
	if v := getenv("NAIVEDATE_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := getenv("NAIVEDATE_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return config{}, fmt.Errorf("NAIVEDATE_CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = n
	}
	if v := getenv("NAIVEDATE_HOLIDAYS"); v != "" {
		cfg.HolidaysFile = v
	}
	if v := getenv("NAIVEDATE_ENCODING"); v != "" {
		cfg.Encoding = v
	}
	if v := getenv("NAIVEDATE_LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return config{}, fmt.Errorf("NAIVEDATE_LOG_LEVEL: %w", err)
		}
	}
	if v := getenv("NAIVEDATE_TODAY"); v != "" {
		if _, err := naivedate.ParseDate(v); err != nil {
			return config{}, fmt.Errorf("NAIVEDATE_TODAY: %w", err)
		}
		cfg.Today = v
	}
	return cfg, nil
}

// loadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
