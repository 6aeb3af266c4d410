package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hillclimb/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the merged Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
//
// Flags override HILLCLIMB_* variables, which override the file named by
// -config (or HILLCLIMB_CONFIG), which overrides the defaults.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hillclimb - shortest climbs across an elevation map.

Usage:
  hillclimb [options] [MAP_PATH]

Arguments:
  MAP_PATH
    Path to a heightmap: one row per line, 'a'-'z', one 'S' and one 'E'.

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	envFileFlag := flagSet.String("env-file", ".env", "Dotenv file consulted for HILLCLIMB_* variables.")
	inputFlag := flagSet.String("input", "", "Path to the heightmap file.")
	iFlag := flagSet.String("i", "", "Path to the heightmap file (shorthand).")
	strategyFlag := flagSet.String("strategy", def.Strategy, "Multi-source strategy. Options: 'per-candidate' or 'reverse'.")
	workersFlag := flagSet.Int("workers", def.Workers, "Number of concurrent candidate searches.")
	timeoutFlag := flagSet.Duration("timeout", def.Timeout, "Per-candidate search budget; 0 disables it.")
	logFormatFlag := flagSet.String("log-format", def.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pathFlag := flagSet.Bool("path", false, "Print the map with each path overlaid.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	lookup, err := config.EnvLookup(*envFileFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := def
	configPath := *configFlag
	if configPath == "" {
		configPath, _ = lookup(config.EnvPrefix + "CONFIG")
	}
	if configPath != "" {
		if err := cfg.LoadFile(configPath); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Configuration file loaded.", "path", configPath)
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// only flags given on the command line override the lower layers
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputFlag
		case "i":
			if *inputFlag == "" {
				cfg.InputPath = *iFlag
			}
		case "strategy":
			cfg.Strategy = *strategyFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "timeout":
			cfg.Timeout = *timeoutFlag
		case "log-format":
			cfg.LogFormat = *logFormatFlag
		case "log-level":
			cfg.LogLevel = *logLevelFlag
		case "path":
			cfg.ShowPath = *pathFlag
		}
	})
	if *inputFlag == "" && *iFlag == "" && flagSet.NArg() > 0 {
		cfg.InputPath = flagSet.Arg(0)
	}
	slog.Debug("Map path determined.", "path", cfg.InputPath)

	if cfg.InputPath == "" {
		slog.Debug("No map path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}

// ExitCode reports the process exit code for err: 0 for nil, the embedded
// code for an *ExitError, and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
