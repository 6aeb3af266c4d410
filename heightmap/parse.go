package heightmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxRowBytes bounds the width of a single map row.
const maxRowBytes = 16 << 20

// Parse reads a height map, one row per line. Each byte is a lowercase
// letter ('a' lowest … 'z' highest), 'S' for the start or 'E' for the end.
// Blank lines are skipped and a trailing '\r' is trimmed from every line.
// Rows may be up to 16 MiB wide.
// Returns ErrInvalidSymbol for any other byte, plus every error New returns.
func Parse(r io.Reader) (*Grid, error) {
	var rows [][]Cell
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowBytes)
	for line := 0; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		row := make([]Cell, len(text))
		for x := 0; x < len(text); x++ {
			c, err := cellFor(text[x])
			if err != nil {
				return nil, fmt.Errorf("%w: %q at line %d column %d", err, text[x], line+1, x+1)
			}
			row[x] = c
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("heightmap: read: %w", err)
	}

	return New(rows)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// cellFor maps one map symbol to its Cell.
func cellFor(b byte) (Cell, error) {
	switch {
	case b == 'S':
		return StartCell(), nil
	case b == 'E':
		return EndCell(), nil
	case b >= 'a' && b <= 'z':
		return NormalCell(Elevation(b - 'a')), nil
	default:
		return Cell{}, ErrInvalidSymbol
	}
}
