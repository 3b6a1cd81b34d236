// Package gridio constructs grids from delimited text and renders them back.
// The engine itself never validates input; shape and range errors are caught
// here, at construction time.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"svw.info/gridsolve/internal/domain"
)

// ErrNoSource is returned by Build when neither an in-memory grid nor a
// source path is supplied.
var ErrNoSource = errors.New("gridio: either an in-memory grid or a source path is required")

// Build constructs a grid from whichever source is given, preferring the
// in-memory values.
func Build(values *domain.Grid, path string) (*domain.Grid, error) {
	switch {
	case values != nil:
		g := values.Clone()
		return &g, nil
	case path != "":
		return ParseFile(path)
	default:
		return nil, ErrNoSource
	}
}

// Parse reads a grid from r: 9 lines, each with 9 whitespace-separated
// integers in 0-9, 0 meaning empty.
func Parse(r io.Reader) (*domain.Grid, error) {
	var g domain.Grid
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if row == 9 {
			return nil, errors.New("gridio: more than 9 rows")
		}
		fields := strings.Fields(line)
		if len(fields) != 9 {
			return nil, fmt.Errorf("gridio: row %d has %d cells, want 9", row, len(fields))
		}
		for col, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("gridio: row %d col %d: %w", row, col, err)
			}
			if v < 0 || v > 9 {
				return nil, fmt.Errorf("gridio: row %d col %d: value %d out of range", row, col, v)
			}
			g[row][col] = uint8(v)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != 9 {
		return nil, fmt.Errorf("gridio: got %d rows, want 9", row)
	}
	return &g, nil
}

// ParseFile reads a grid from the file at path.
func ParseFile(path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Render writes the grid to w, one row per line, each cell right-aligned in
// a two-character field.
func Render(w io.Writer, g *domain.Grid) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if _, err := fmt.Fprintf(w, "%2d ", g[r][c]); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// String renders the grid to a string.
func String(g *domain.Grid) string {
	var b strings.Builder
	_ = Render(&b, g)
	return b.String()
}
