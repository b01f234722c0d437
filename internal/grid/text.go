package grid

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Text format errors.
var (
	ErrEmpty     = errors.New("grid text has no rows")
	ErrRaggedRow = errors.New("grid row length differs from the first row")
)

const newline = '\n'

// Format renders a as text: one rune per cell, one line per row, every row
// terminated by a newline. symbol maps a cell value to its rune.
func Format[T comparable](a *Array2D[T], symbol func(T) rune) string {
	var sb strings.Builder
	sb.Grow((a.width + 1) * a.height)
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			sb.WriteRune(symbol(a.data[y*a.width+x]))
		}
		sb.WriteByte(newline)
	}
	return sb.String()
}

// Parse reads the text format produced by Format into a rune grid.
// Empty lines are skipped, a trailing carriage return on a line is dropped,
// and every remaining line must have the same rune count as the first.
func Parse(text string) (*Array2D[rune], error) {
	type row struct {
		line  int
		runes []rune
	}
	var rows []row
	for i, line := range strings.Split(text, string(newline)) {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: invalid UTF-8", i+1)
		}
		rows = append(rows, row{line: i + 1, runes: []rune(line)})
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	width := len(rows[0].runes)
	arr, err := New(width, len(rows), rune(0))
	if err != nil {
		return nil, err
	}
	for y, r := range rows {
		if len(r.runes) != width {
			return nil, fmt.Errorf("%w: line %d has %d cells, want %d", ErrRaggedRow, r.line, len(r.runes), width)
		}
		copy(arr.data[y*width:(y+1)*width], r.runes)
	}
	return arr, nil
}

// Read parses the text format from r.
func Read(r io.Reader) (*Array2D[rune], error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return Parse(string(b))
}
