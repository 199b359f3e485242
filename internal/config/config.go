// Package config reads renoboard settings from RENOBOARD_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/renoboard/internal/domain"
	"github.com/alexanderramin/renoboard/internal/timeline"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// DBPath defaults to ~/.renoboard/renoboard.db.
	DBPath        string  `env:"RENOBOARD_DB"`
	TimeZone      string  `env:"RENOBOARD_TZ"             envDefault:"Local"`
	WeekStart     string  `env:"RENOBOARD_WEEK_START"     envDefault:"sunday"`
	OverflowLimit int     `env:"RENOBOARD_OVERFLOW_LIMIT" envDefault:"3"`
	MinBarPct     float64 `env:"RENOBOARD_MIN_BAR_PCT"    envDefault:"5"`
	Inversion     string  `env:"RENOBOARD_INVERSION"      envDefault:"collapse"`
	LogUseCases   bool    `env:"RENOBOARD_LOG_USE_CASES"`
	HTTPAddr      string  `env:"RENOBOARD_HTTP_ADDR"      envDefault:":8080"`
	CacheSize     int     `env:"RENOBOARD_CACHE_SIZE"     envDefault:"64"`

	location *time.Location
	weekday  time.Weekday
}

// Load reads the process environment.
func Load() (Config, error) {
	return load(env.Options{})
}

// LoadFrom reads only the given variables. Tests use it to stay independent
// of the host environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return load(env.Options{Environment: vars})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("determining home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".renoboard", "renoboard.db")
	}
	if err := cfg.resolve(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) resolve() error {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return fmt.Errorf("RENOBOARD_TZ: %w", err)
	}
	c.location = loc

	wd, err := ParseWeekday(c.WeekStart)
	if err != nil {
		return fmt.Errorf("RENOBOARD_WEEK_START: %w", err)
	}
	c.weekday = wd

	switch domain.InversionPolicy(strings.ToLower(c.Inversion)) {
	case domain.InversionCollapse, domain.InversionSwap:
		c.Inversion = strings.ToLower(c.Inversion)
	default:
		return fmt.Errorf("RENOBOARD_INVERSION: want collapse or swap, got %q", c.Inversion)
	}

	if c.OverflowLimit < 0 {
		return fmt.Errorf("RENOBOARD_OVERFLOW_LIMIT must be >= 0, got %d", c.OverflowLimit)
	}
	if c.MinBarPct < 0 || c.MinBarPct > 100 {
		return fmt.Errorf("RENOBOARD_MIN_BAR_PCT must be within 0-100, got %g", c.MinBarPct)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("RENOBOARD_CACHE_SIZE must be >= 0, got %d", c.CacheSize)
	}
	return nil
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

// Location is the zone calendar days are taken in. Zero-value configs use time.Local.
func (c Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

func (c Config) WeekStartDay() time.Weekday {
	return c.weekday
}

// MinVisibleRatio converts MinBarPct to a fraction of the chart span.
func (c Config) MinVisibleRatio() float64 {
	return c.MinBarPct / 100
}

func (c Config) InversionPolicy() domain.InversionPolicy {
	if c.Inversion == "" {
		return domain.InversionCollapse
	}
	return domain.InversionPolicy(c.Inversion)
}

// Resolver builds the date resolver every view shares.
func (c Config) Resolver() timeline.Resolver {
	r := timeline.DefaultResolver(c.Location())
	r.Inversion = c.InversionPolicy()
	return r
}
