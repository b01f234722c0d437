// Package maze holds the editable maze: a grid of symbols with at most one
// player spawn, any number of enemy spawns and walls, plus its text file format.
package maze

import (
	"errors"
	"fmt"

	"maze-shooter/internal/grid"
)

var (
	ErrOutOfBounds          = errors.New("coordinate outside the maze")
	ErrUnknownSymbol        = errors.New("unknown maze symbol")
	ErrNoPlayerSpawn        = errors.New("maze has no player spawn")
	ErrMultiplePlayerSpawns = errors.New("maze has more than one player spawn")
)

// Maze is a rectangular grid of symbols.
type Maze struct {
	grid *grid.Array2D[Symbol]
}

// New returns a width×height maze with every cell free.
func New(width, height int) (*Maze, error) {
	g, err := grid.New(width, height, Free)
	if err != nil {
		return nil, fmt.Errorf("new maze: %w", err)
	}
	return &Maze{grid: g}, nil
}

func (m *Maze) Width() int  { return m.grid.Width() }
func (m *Maze) Height() int { return m.grid.Height() }

// InBounds reports whether c is inside the maze.
func (m *Maze) InBounds(c grid.Coord) bool { return m.grid.InBounds(c) }

// At returns the symbol at c, or Blocked when c is outside the maze so the
// border behaves like a wall.
func (m *Maze) At(c grid.Coord) Symbol {
	s, ok := m.grid.Lookup(c)
	if !ok {
		return Blocked
	}
	return s
}

// IsWalkable reports whether c is inside the maze and not a wall.
// Spawn markers are walkable.
func (m *Maze) IsWalkable(c grid.Coord) bool {
	s, ok := m.grid.Lookup(c)
	return ok && s != Blocked
}

// Place puts sym at c, overwriting whatever was there. A new player spawn
// replaces any existing one.
func (m *Maze) Place(c grid.Coord, sym Symbol) error {
	if !m.InBounds(c) {
		return fmt.Errorf("place %v at %v: %w", sym, c, ErrOutOfBounds)
	}
	if !sym.Valid() {
		return fmt.Errorf("place at %v: %w %q", c, ErrUnknownSymbol, rune(sym))
	}
	if sym == PlayerSpawn {
		if old, ok := m.PlayerSpawn(); ok {
			m.grid.Set(old, Free)
		}
	}
	m.grid.Set(c, sym)
	return nil
}

// Free clears the cell at c.
func (m *Maze) Free(c grid.Coord) error {
	if !m.InBounds(c) {
		return fmt.Errorf("free %v: %w", c, ErrOutOfBounds)
	}
	m.grid.Set(c, Free)
	return nil
}

// Clear frees every cell.
func (m *Maze) Clear() { m.grid.Fill(Free) }

// PlayerSpawn returns the player spawn cell, if any.
func (m *Maze) PlayerSpawn() (grid.Coord, bool) {
	return m.grid.Find(func(s Symbol) bool { return s == PlayerSpawn })
}

// EnemySpawns returns every enemy spawn cell, rows first.
func (m *Maze) EnemySpawns() []grid.Coord { return m.cellsOf(EnemySpawn) }

// BlockedCoords returns every wall cell, rows first.
func (m *Maze) BlockedCoords() []grid.Coord { return m.cellsOf(Blocked) }

func (m *Maze) cellsOf(sym Symbol) []grid.Coord {
	var out []grid.Coord
	m.grid.Each(func(c grid.Coord, s Symbol) {
		if s == sym {
			out = append(out, c)
		}
	})
	return out
}

// Count returns how many cells hold sym.
func (m *Maze) Count(sym Symbol) int {
	n := 0
	m.grid.Each(func(_ grid.Coord, s Symbol) {
		if s == sym {
			n++
		}
	})
	return n
}

// Validate checks that the maze can be played: exactly one player spawn.
func (m *Maze) Validate() error {
	switch n := m.Count(PlayerSpawn); {
	case n == 0:
		return ErrNoPlayerSpawn
	case n > 1:
		return ErrMultiplePlayerSpawns
	}
	return nil
}

// Equal reports whether both mazes have the same size and symbols.
func (m *Maze) Equal(o *Maze) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.grid.Equal(o.grid)
}

// Clone returns a deep copy of m.
func (m *Maze) Clone() *Maze { return &Maze{grid: m.grid.Clone()} }

// String renders the dimensions followed by the text format.
func (m *Maze) String() string {
	return fmt.Sprintf("Maze: dimensions(%d, %d),\nmaze: \n%s", m.Width(), m.Height(), grid.Format(m.grid, symbolRune))
}
