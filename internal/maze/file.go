package maze

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"maze-shooter/internal/grid"
)

// MarshalText encodes the maze in its text format.
func (m *Maze) MarshalText() ([]byte, error) {
	return []byte(grid.Format(m.grid, symbolRune)), nil
}

// UnmarshalText decodes the text format into m, replacing its contents.
// Unknown characters and a second player spawn are rejected.
func (m *Maze) UnmarshalText(text []byte) error {
	runes, err := grid.Parse(string(text))
	if err != nil {
		return fmt.Errorf("parse maze: %w", err)
	}
	g, err := symbols(runes)
	if err != nil {
		return err
	}
	m.grid = g
	return nil
}

func symbols(runes *grid.Array2D[rune]) (*grid.Array2D[Symbol], error) {
	g, err := grid.New(runes.Width(), runes.Height(), Free)
	if err != nil {
		return nil, fmt.Errorf("parse maze: %w", err)
	}

	players := 0
	var bad error
	runes.Each(func(c grid.Coord, r rune) {
		if bad != nil {
			return
		}
		sym := Symbol(r)
		if !sym.Valid() {
			bad = fmt.Errorf("%w %q at row %d, column %d", ErrUnknownSymbol, r, c.Y+1, c.X+1)
			return
		}
		if sym == PlayerSpawn {
			players++
			if players > 1 {
				bad = fmt.Errorf("%w: second one at row %d, column %d", ErrMultiplePlayerSpawns, c.Y+1, c.X+1)
				return
			}
		}
		g.Set(c, sym)
	})
	if bad != nil {
		return nil, bad
	}
	return g, nil
}

// Parse decodes a maze from its text format.
func Parse(text string) (*Maze, error) {
	m := &Maze{}
	if err := m.UnmarshalText([]byte(text)); err != nil {
		return nil, err
	}
	return m, nil
}

// Read decodes a maze from r.
func Read(r io.Reader) (*Maze, error) {
	runes, err := grid.Read(r)
	if err != nil {
		return nil, fmt.Errorf("parse maze: %w", err)
	}
	g, err := symbols(runes)
	if err != nil {
		return nil, err
	}
	return &Maze{grid: g}, nil
}

// Load reads a maze file.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load maze %s: %w", path, err)
	}
	return m, nil
}

// Save writes the maze to path, creating parent directories as needed.
// The file is written to a temporary sibling and renamed into place so a
// failed save never leaves a truncated maze behind.
func (m *Maze) Save(path string) error {
	b, err := m.MarshalText()
	if err != nil {
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	tmp, err := os.CreateTemp(dir, ".maze-*.tmp")
	if err != nil {
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("save maze %s: %w", path, err)
	}
	return nil
}
