package multisource_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/ctxlog"
	"github.com/katalvlaran/hillclimb/multisource"
)

const example = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// walledIn surrounds E with a ring two levels above everything outside it.
const walledIn = `Saaaa
accca
acEca
accca
aaaaa
`

var strategies = []multisource.Strategy{multisource.PerCandidate, multisource.ReverseSweep}

func mustGrid(t testing.TB, s string) *heightmap.Grid {
	t.Helper()
	g, err := heightmap.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return g
}

func TestCandidates(t *testing.T) {
	g := mustGrid(t, example)
	want := []heightmap.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}, {X: 0, Y: 4}}
	assert.Equal(t, want, multisource.Candidates(g))
}

func TestRun_Example(t *testing.T) {
	g := mustGrid(t, example)
	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := multisource.Run(context.Background(), g, multisource.WithStrategy(s))
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Equal(t, 29, res.Steps())
			assert.Equal(t, heightmap.Point{X: 0, Y: 4}, res.Start)
			assert.Equal(t, 6, res.Candidates)
			assert.Equal(t, 6, res.Reached)
			assert.Zero(t, res.TimedOut)
			require.Equal(t, res.Start, res.Path[0])
			require.Equal(t, g.End(), res.Path[len(res.Path)-1])
			for i := 1; i < len(res.Path); i++ {
				require.Contains(t, g.Successors(res.Path[i-1]), res.Path[i], "step %d", i)
			}
		})
	}
}

// TestRun_SingleWorker checks the reduction does not depend on scheduling.
func TestRun_SingleWorker(t *testing.T) {
	g := mustGrid(t, example)
	res, err := multisource.Run(context.Background(), g, multisource.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, 29, res.Steps())
	assert.Equal(t, heightmap.Point{X: 0, Y: 4}, res.Start)
}

// TestRun_TieBreak picks the first candidate in row-major order among equals.
func TestRun_TieBreak(t *testing.T) {
	// A symmetric ridge: (0,0) and S at (50,0) are both 25 steps from E.
	slope := "abcdefghijklmnopqrstuvwxy"
	back := []byte(slope)
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}
	back[len(back)-1] = 'S'
	g := mustGrid(t, slope+"E"+string(back)+"\n")
	for _, s := range strategies {
		res, err := multisource.Run(context.Background(), g, multisource.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, 25, res.Steps(), s.String())
		assert.Equal(t, heightmap.Point{X: 0, Y: 0}, res.Start, s.String())
		assert.Equal(t, 2, res.Reached, s.String())
	}
}

func TestRun_NoPath(t *testing.T) {
	g := mustGrid(t, walledIn)
	for _, s := range strategies {
		res, err := multisource.Run(context.Background(), g, multisource.WithStrategy(s))
		require.NoError(t, err)
		assert.False(t, res.Found, s.String())
		assert.Nil(t, res.Path, s.String())
		assert.Equal(t, -1, res.Steps(), s.String())
		assert.Equal(t, 16, res.Candidates, s.String())
		assert.Zero(t, res.Reached, s.String())
	}
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := multisource.Run(ctx, nil)
	require.ErrorIs(t, err, multisource.ErrNilGrid)

	g := mustGrid(t, example)
	_, err = multisource.Run(ctx, g, multisource.WithWorkers(0))
	require.ErrorIs(t, err, multisource.ErrOptionViolation)
	_, err = multisource.Run(ctx, g, multisource.WithTimeout(-time.Second))
	require.ErrorIs(t, err, multisource.ErrOptionViolation)
	_, err = multisource.Run(ctx, g, multisource.WithStrategy(multisource.Strategy(9)))
	require.ErrorIs(t, err, multisource.ErrOptionViolation)
}

func TestRun_Cancelled(t *testing.T) {
	g := mustGrid(t, example)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, s := range strategies {
		_, err := multisource.Run(ctx, g, multisource.WithStrategy(s))
		require.ErrorIs(t, err, context.Canceled, s.String())
	}
}

// sealedPlain is an n×n plateau one level above S whose goal corner is
// walled off, so a search from S has to exhaust every cell.
func sealedPlain(n int) *heightmap.Grid {
	rows := make([][]heightmap.Cell, n)
	for y := range rows {
		rows[y] = make([]heightmap.Cell, n)
		for x := range rows[y] {
			rows[y][x] = heightmap.NormalCell(1)
		}
	}
	rows[0][0] = heightmap.StartCell()
	rows[n-1][n-1] = heightmap.EndCell()
	rows[n-2][n-1] = heightmap.NormalCell(3)
	rows[n-1][n-2] = heightmap.NormalCell(3)
	rows[n-2][n-2] = heightmap.NormalCell(3)
	return heightmap.MustNew(rows)
}

// TestRun_TimeoutIsNotFound verifies that a candidate running out of time
// is dropped rather than failing the whole run.
func TestRun_TimeoutIsNotFound(t *testing.T) {
	g := sealedPlain(300)

	res, err := multisource.Run(context.Background(), g, multisource.WithTimeout(time.Nanosecond))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Candidates)
	assert.Equal(t, 1, res.TimedOut)

	res, err = multisource.Run(context.Background(), g)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Zero(t, res.TimedOut)
}

// TestRun_Logging checks that progress is reported through the context logger.
func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, err := multisource.Run(ctx, mustGrid(t, example), multisource.WithWorkers(2))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Multi-source run started.")
	assert.Equal(t, 6, strings.Count(out, "Candidate searched."))
	assert.Contains(t, out, "steps=29")
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]multisource.Strategy{
		"":              multisource.PerCandidate,
		"per-candidate": multisource.PerCandidate,
		"Reverse":       multisource.ReverseSweep,
	} {
		got, err := multisource.ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
	_, err := multisource.ParseStrategy("dijkstra")
	require.ErrorIs(t, err, multisource.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", multisource.Strategy(7).String())
}

// randomGrid rises from S in the top-left quarter towards E in the
// bottom-right quarter, with noise that opens or blocks routes at random.
func randomGrid(rnd *rand.Rand, w, h int) *heightmap.Grid {
	start := heightmap.Point{X: rnd.Intn(w / 4), Y: rnd.Intn(h / 4)}
	end := heightmap.Point{X: w - 1 - rnd.Intn(w/4), Y: h - 1 - rnd.Intn(h/4)}
	span := start.Manhattan(end)

	rows := make([][]heightmap.Cell, h)
	for y := range rows {
		rows[y] = make([]heightmap.Cell, w)
		for x := range rows[y] {
			p := heightmap.Point{X: x, Y: y}
			e := p.Manhattan(start)*25/span + rnd.Intn(4) - 2
			rows[y][x] = heightmap.NormalCell(heightmap.Elevation(max(0, min(25, e))))
		}
	}
	rows[start.Y][start.X] = heightmap.StartCell()
	rows[end.Y][end.X] = heightmap.EndCell()
	return heightmap.MustNew(rows)
}

// TestRun_StrategiesAgree compares both strategies and checks that the
// multi-source answer never exceeds the single-source one.
func TestRun_StrategiesAgree(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	ctx := context.Background()
	found := 0
	for i := 0; i < 150; i++ {
		g := randomGrid(rnd, 12+rnd.Intn(12), 12+rnd.Intn(12))

		per, err := multisource.Run(ctx, g)
		require.NoError(t, err)
		rev, err := multisource.Run(ctx, g, multisource.WithStrategy(multisource.ReverseSweep))
		require.NoError(t, err)

		require.Equal(t, per.Found, rev.Found, "grid %d:\n%s", i, g)
		require.Equal(t, per.Steps(), rev.Steps(), "grid %d:\n%s", i, g)
		require.Equal(t, per.Start, rev.Start, "grid %d:\n%s", i, g)
		require.Equal(t, per.Reached, rev.Reached, "grid %d:\n%s", i, g)

		single, err := astar.Search(g, g.Start())
		require.NoError(t, err)
		if single.Found {
			found++
			require.True(t, per.Found)
			require.LessOrEqual(t, per.Steps(), single.Steps(), "grid %d:\n%s", i, g)
		}
	}
	require.Positive(t, found, "fixture generator produced no solvable grids")
}
