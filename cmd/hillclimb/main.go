package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/cli"
	"github.com/katalvlaran/hillclimb/internal/config"
	"github.com/katalvlaran/hillclimb/internal/ctxlog"
	"github.com/katalvlaran/hillclimb/multisource"
)

// main is the entrypoint for the hillclimb command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}

// run encapsulates the program for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(os.Stderr, cfg)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	g, err := heightmap.ParseFile(cfg.InputPath)
	if err != nil {
		return err
	}
	logger.Debug("Heightmap loaded.", "path", cfg.InputPath, "width", g.Width, "height", g.Height,
		"start", g.Start().String(), "end", g.End().String())

	single, err := astar.Search(g, g.Start(), astar.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("single-source search: %w", err)
	}
	report(outW, "result", single.Found, single.Steps())
	if cfg.ShowPath && single.Found {
		fmt.Fprint(outW, g.Render(single.Path))
	}

	opts := []multisource.Option{
		multisource.WithStrategy(cfg.MultiSourceStrategy()),
		multisource.WithWorkers(cfg.Workers),
		multisource.WithTimeout(cfg.Timeout),
	}
	multi, err := multisource.Run(ctx, g, opts...)
	if err != nil {
		return fmt.Errorf("multi-source search: %w", err)
	}
	report(outW, "result part 2", multi.Found, multi.Steps())
	if cfg.ShowPath && multi.Found {
		fmt.Fprint(outW, g.Render(multi.Path))
	}
	if multi.TimedOut > 0 {
		logger.Warn("Some candidate searches timed out.", "timed_out", multi.TimedOut, "candidates", multi.Candidates)
	}
	return nil
}

// report prints one labelled answer, or "no path" when the goal is unreachable.
func report(w io.Writer, label string, found bool, steps int) {
	if !found {
		fmt.Fprintf(w, "%s: no path\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %d\n", label, steps)
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
