package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/hillclimb/multisource"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "HILLCLIMB_"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds everything the hillclimb command needs for one run.
type Config struct {
	InputPath string        // heightmap file to read
	Strategy  string        // multi-source strategy: "per-candidate" or "reverse"
	Workers   int           // concurrent candidate searches
	Timeout   time.Duration // per-candidate search budget, 0 disables
	LogLevel  string        // debug, info, warn or error
	LogFormat string        // text or json
	ShowPath  bool          // print the rendered path overlays
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Strategy:  multisource.PerCandidate.String(),
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// fileConfig mirrors Config for gohcl; nil fields were absent from the file.
type fileConfig struct {
	Input     *string `hcl:"input,optional"`
	Strategy  *string `hcl:"strategy,optional"`
	Workers   *int    `hcl:"workers,optional"`
	Timeout   *string `hcl:"timeout,optional"`
	LogLevel  *string `hcl:"log_level,optional"`
	LogFormat *string `hcl:"log_format,optional"`
	ShowPath  *bool   `hcl:"show_path,optional"`
}

// LoadFile overlays the attributes present in the HCL file at path onto c.
//
//	input     = "maps/day12.txt"
//	strategy  = "reverse"
//	workers   = 4
//	timeout   = "250ms"
//	log_level = "debug"
func (c *Config) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("config: failed to parse %s: %w", path, diags)
	}

	var fc fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return fmt.Errorf("config: failed to decode %s: %w", path, diags)
	}

	if fc.Input != nil {
		c.InputPath = *fc.Input
	}
	if fc.Strategy != nil {
		c.Strategy = *fc.Strategy
	}
	if fc.Workers != nil {
		c.Workers = *fc.Workers
	}
	if fc.Timeout != nil {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return fmt.Errorf("config: %s: timeout: %w", path, err)
		}
		c.Timeout = d
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFormat != nil {
		c.LogFormat = *fc.LogFormat
	}
	if fc.ShowPath != nil {
		c.ShowPath = *fc.ShowPath
	}
	return nil
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment, falling back
// to the variables defined in the dotenv file at path. A missing file is
// not an error.
func EnvLookup(path string) (LookupFunc, error) {
	dotenv, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		dotenv = nil
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}, nil
}

// ApplyEnv overlays HILLCLIMB_* variables found through lookup onto c.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvPrefix + "INPUT"); ok {
		c.InputPath = v
	}
	if v, ok := lookup(EnvPrefix + "STRATEGY"); ok {
		c.Strategy = v
	}
	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sWORKERS must be an integer: %w", EnvPrefix, err)
		}
		c.Workers = n
	}
	if v, ok := lookup(EnvPrefix + "TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: %sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Timeout = d
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := lookup(EnvPrefix + "SHOW_PATH"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %sSHOW_PATH must be a boolean: %w", EnvPrefix, err)
		}
		c.ShowPath = b
	}
	return nil
}

// Validate normalizes the string fields to lower case and checks every value.
func (c *Config) Validate() error {
	c.Strategy = strings.ToLower(strings.TrimSpace(c.Strategy))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if _, err := multisource.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy must be 'per-candidate' or 'reverse' (%q)", ErrInvalid, c.Strategy)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1 (%d)", ErrInvalid, c.Workers)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrInvalid, c.Timeout)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level must be 'debug', 'info', 'warn', or 'error' (%q)", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log-format must be 'text' or 'json' (%q)", ErrInvalid, c.LogFormat)
	}
	return nil
}

// MultiSourceStrategy returns the parsed Strategy field.
func (c *Config) MultiSourceStrategy() multisource.Strategy {
	s, _ := multisource.ParseStrategy(c.Strategy)
	return s
}

// Level maps LogLevel to its slog.Level; unknown names map to Info.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
