package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// slopeGrid builds an n×n map whose elevation rises diagonally from S at the
// top-left corner to E at the bottom-right, so every cell reaches the goal.
func slopeGrid(n int) *heightmap.Grid {
	rows := make([][]heightmap.Cell, n)
	for y := 0; y < n; y++ {
		rows[y] = make([]heightmap.Cell, n)
		for x := 0; x < n; x++ {
			rows[y][x] = heightmap.NormalCell(heightmap.Elevation((x + y) * 25 / (2*n - 2)))
		}
	}
	rows[0][0] = heightmap.StartCell()
	rows[n-1][n-1] = heightmap.EndCell()
	return heightmap.MustNew(rows)
}

// noiseGrid builds an n×n map of random elevations in [0,4].
func noiseGrid(n int) *heightmap.Grid {
	rnd := rand.New(rand.NewSource(42))
	rows := make([][]heightmap.Cell, n)
	for y := 0; y < n; y++ {
		rows[y] = make([]heightmap.Cell, n)
		for x := 0; x < n; x++ {
			rows[y][x] = heightmap.NormalCell(heightmap.Elevation(rnd.Intn(5)))
		}
	}
	rows[0][0] = heightmap.StartCell()
	rows[n-1][n-1] = heightmap.EndCell()
	return heightmap.MustNew(rows)
}

// BenchmarkBFS_Slope measures a forward sweep over a fully reachable 300×300 map.
func BenchmarkBFS_Slope(b *testing.B) {
	g := slopeGrid(300)
	b.ReportAllocs()
	b.SetBytes(int64(g.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Start())
	}
}

// BenchmarkBFS_ReverseSlope measures the reverse sweep rooted at the goal.
func BenchmarkBFS_ReverseSlope(b *testing.B) {
	g := slopeGrid(300)
	b.ReportAllocs()
	b.SetBytes(int64(g.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.End(), bfs.WithReverse())
	}
}

// BenchmarkBFS_Noise runs BFS on a random low-relief 300×300 map.
func BenchmarkBFS_Noise(b *testing.B) {
	g := noiseGrid(300)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, g.Start())
	}
}
