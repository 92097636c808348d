// Package config loads driver settings from a .env file, the process
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrInvalidConfig indicates a setting that failed parsing or validation.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Environment variable names.
const (
	EnvRows     = "MAZERUN_ROWS"
	EnvCols     = "MAZERUN_COLS"
	EnvSeed     = "MAZERUN_SEED"
	EnvCap      = "MAZERUN_CORRIDOR_CAP"
	EnvSpeed    = "MAZERUN_SPEED"
	EnvInterval = "MAZERUN_INTERVAL"
	EnvLoop     = "MAZERUN_LOOP"
	EnvLogLevel = "MAZERUN_LOG_LEVEL"
)

// Config holds everything the driver needs.
type Config struct {
	// Rows and Cols are the logical maze size.
	Rows, Cols int
	// Seed for the first maze; 0 picks one from the clock.
	Seed int64
	// CorridorCap forces a branch after this many carved steps; 0 disables it.
	CorridorCap int
	// Speed is the number of search steps per tick.
	Speed int
	// Interval is the pause between ticks.
	Interval time.Duration
	// Loop regenerates a new maze after each solved one instead of exiting.
	Loop bool
	// LogLevel is a logrus level name.
	LogLevel string
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Rows:     20,
		Cols:     20,
		Speed:    1,
		Interval: 30 * time.Millisecond,
		LogLevel: "info",
	}
}

// Load reads dotenv (if the file exists) and overlays the process environment.
// Only malformed values are reported; ranges are left to Validate so that
// flags applied afterwards can still correct them. An empty dotenv path skips
// the file.
func Load(dotenv string) (Config, error) {
	vars := map[string]string{}
	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", dotenv, err)
		default:
			vars = fileVars
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	})
}

// FromLookup builds a Config from Default overlaid with the variables lookup finds.
// It fails only on values that do not parse; call Validate once every source is applied.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}
	p.int(EnvRows, &cfg.Rows)
	p.int(EnvCols, &cfg.Cols)
	p.int64(EnvSeed, &cfg.Seed)
	p.int(EnvCap, &cfg.CorridorCap)
	p.int(EnvSpeed, &cfg.Speed)
	p.duration(EnvInterval, &cfg.Interval)
	p.bool(EnvLoop, &cfg.Loop)
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags to cfg, using its current values as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "logical maze rows")
	fs.IntVar(&cfg.Cols, "cols", cfg.Cols, "logical maze columns")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = from clock)")
	fs.IntVar(&cfg.CorridorCap, "cap", cfg.CorridorCap, "corridor length cap (0 = none)")
	fs.IntVar(&cfg.Speed, "speed", cfg.Speed, "search steps per frame")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between frames")
	fs.BoolVar(&cfg.Loop, "loop", cfg.Loop, "keep generating new mazes")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
}

// Validate checks ranges and the log level name.
func (cfg Config) Validate() error {
	switch {
	case cfg.Rows < 1 || cfg.Cols < 1:
		return fmt.Errorf("%w: maze size %dx%d must be positive", ErrInvalidConfig, cfg.Rows, cfg.Cols)
	case cfg.CorridorCap < 0:
		return fmt.Errorf("%w: corridor cap %d is negative", ErrInvalidConfig, cfg.CorridorCap)
	case cfg.Speed < 1:
		return fmt.Errorf("%w: speed %d must be at least 1", ErrInvalidConfig, cfg.Speed)
	case cfg.Interval < 0:
		return fmt.Errorf("%w: interval %v is negative", ErrInvalidConfig, cfg.Interval)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the parsed log level, defaulting to Info.
func (cfg Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// parser accumulates the first parse error.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) raw(key string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	return p.lookup(key)
}

func (p *parser) fail(key, v string, err error) {
	p.err = fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
}

func (p *parser) int(key string, dst *int) {
	if v, ok := p.raw(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) int64(key string, dst *int64) {
	if v, ok := p.raw(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (p *parser) bool(key string, dst *bool) {
	if v, ok := p.raw(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (p *parser) duration(key string, dst *time.Duration) {
	if v, ok := p.raw(key); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			p.fail(key, v, err)
			return
		}
		*dst = d
	}
}
