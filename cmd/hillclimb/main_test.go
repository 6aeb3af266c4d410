package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/cli"
)

func TestRun_Example(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"testdata/example.txt"})

	require.NoError(t, err)
	require.Equal(t, "result: 31\nresult part 2: 29\n", out.String())
}

func TestRun_ReverseStrategy(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-strategy", "reverse", "-workers", "1", "testdata/example.txt"})

	require.NoError(t, err)
	require.Equal(t, "result: 31\nresult part 2: 29\n", out.String())
}

func TestRun_ShowPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-path", "testdata/example.txt"})

	require.NoError(t, err)
	require.Contains(t, out.String(), "result: 31\nS#######\nab######\nac###E##\nac######\nab######\nresult part 2: 29\n")
}

func TestRun_NoPath(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-path", "testdata/walled.txt"})

	require.NoError(t, err)
	require.Equal(t, "result: no path\nresult part 2: no path\n", out.String())
}

func TestRun_InvalidMap(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"testdata/invalid.txt"})

	require.ErrorIs(t, err, heightmap.ErrInvalidSymbol)
	require.Equal(t, 1, cli.ExitCode(err))
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"testdata/does-not-exist.txt"})

	require.Error(t, err)
	require.Contains(t, err.Error(), "heightmap: open")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err)
	require.Equal(t, 2, cli.ExitCode(err))
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
