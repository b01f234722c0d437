// Package generate builds random room-and-corridor mazes by binary space
// partitioning.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"maze-shooter/internal/grid"
	"maze-shooter/internal/maze"
)

var ErrTooSmall = errors.New("maze too small to generate")

// MinSize is the smallest width or height Generate accepts: one 3x3 room
// inside the border.
const MinSize = 5

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives one generation run.
type Config struct {
	Width, Height int
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	// Enemies is the most enemy spawns to place, one per room after the first.
	Enemies int
	Rand    *rand.Rand
}

// DefaultConfig returns settings that suit terminal-sized mazes.
func DefaultConfig(width, height, enemies int, rng *rand.Rand) Config {
	return Config{
		Width:       width,
		Height:      height,
		MinLeafSize: 6,
		MaxLeafSize: 12,
		MinRoomSize: 3,
		RoomPadding: 1,
		Enemies:     enemies,
		Rand:        rng,
	}
}

// Result is a generated maze plus the rooms it was carved from.
type Result struct {
	Maze  *maze.Maze
	Rooms []Rect
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *Rect
}

func (l *bspLeaf) leaf() bool { return l.left == nil && l.right == nil }

// split divides the leaf into two children, returning false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if !l.leaf() {
		return false
	}
	// Split across the long side when the leaf is clearly elongated.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	size := l.H
	if !splitH {
		size = l.W
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if size <= cfg.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room inside every terminal leaf, keeping a one-cell
// wall border around the maze.
func (l *bspLeaf) createRooms(m *maze.Maze, cfg *Config, rooms *[]Rect) error {
	if !l.leaf() {
		if err := l.left.createRooms(m, cfg, rooms); err != nil {
			return err
		}
		return l.right.createRooms(m, cfg, rooms)
	}
	pad := cfg.RoomPadding
	minSize := max(cfg.MinRoomSize, 3)

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)
	rw := min(minSize+cfg.Rand.Intn(availW-minSize+1), l.W-2*pad)
	rh := min(minSize+cfg.Rand.Intn(availH-minSize+1), l.H-2*pad)
	rw, rh = max(rw, 3), max(rh, 3)

	rx := max(l.X+pad+cfg.Rand.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+cfg.Rand.Intn(max(1, l.H-rh-2*pad+1)), 1)
	if rx+rw >= m.Width() {
		rw = m.Width() - rx - 1
	}
	if ry+rh >= m.Height() {
		rh = m.Height() - ry - 1
	}
	if rw < 3 || rh < 3 {
		return nil
	}

	room := Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	if err := carveRoom(m, room); err != nil {
		return err
	}
	l.room = &room
	*rooms = append(*rooms, room)
	return nil
}

func carveRoom(m *maze.Maze, room Rect) error {
	for y := room.Y1; y <= room.Y2; y++ {
		if err := carveH(m, room.X1, room.X2, y); err != nil {
			return err
		}
	}
	return nil
}

// getRoom returns a room from this subtree, preferring the left side.
func (l *bspLeaf) getRoom() *Rect {
	if l.room != nil || l.leaf() {
		return l.room
	}
	if r := l.left.getRoom(); r != nil {
		return r
	}
	return l.right.getRoom()
}

// connectChildren carves corridors between the two halves of every split.
func (l *bspLeaf) connectChildren(m *maze.Maze, cfg *Config) error {
	if l.leaf() {
		return nil
	}
	if err := l.left.connectChildren(m, cfg); err != nil {
		return err
	}
	if err := l.right.connectChildren(m, cfg); err != nil {
		return err
	}

	lRoom, rRoom := l.left.getRoom(), l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return nil
	}
	return carveCorridor(m, lRoom.Center(), rRoom.Center(), cfg)
}

// Generate builds a walled maze of rooms joined by corridors with the player
// spawn in the first room and enemy spawns in the centers of later rooms.
// The same seed always yields the same maze.
func Generate(cfg Config) (Result, error) {
	if cfg.Width < MinSize || cfg.Height < MinSize {
		return Result{}, fmt.Errorf("%dx%d: %w", cfg.Width, cfg.Height, ErrTooSmall)
	}
	if cfg.Rand == nil {
		return Result{}, errors.New("generate: nil random source")
	}
	if cfg.MinLeafSize < MinSize {
		cfg.MinLeafSize = MinSize
	}
	if cfg.MaxLeafSize < cfg.MinLeafSize {
		cfg.MaxLeafSize = cfg.MinLeafSize
	}

	m, err := maze.New(cfg.Width, cfg.Height)
	if err != nil {
		return Result{}, err
	}
	if err := fillBlocked(m); err != nil {
		return Result{}, err
	}

	root := &bspLeaf{W: cfg.Width, H: cfg.Height}
	leaves := []*bspLeaf{root}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if !leaf.leaf() {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(&cfg) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	var rooms []Rect
	if err := root.createRooms(m, &cfg, &rooms); err != nil {
		return Result{}, err
	}
	if len(rooms) == 0 {
		// Every leaf was too cramped; fall back to one room filling the interior.
		room := Rect{X1: 1, Y1: 1, X2: cfg.Width - 2, Y2: cfg.Height - 2}
		if err := carveRoom(m, room); err != nil {
			return Result{}, err
		}
		rooms = append(rooms, room)
	}
	if err := root.connectChildren(m, &cfg); err != nil {
		return Result{}, err
	}
	if err := connectStragglers(m, rooms, &cfg); err != nil {
		return Result{}, err
	}

	if err := placeSpawns(m, rooms, cfg.Enemies); err != nil {
		return Result{}, err
	}
	return Result{Maze: m, Rooms: rooms}, nil
}

func fillBlocked(m *maze.Maze) error {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if err := m.Place(grid.C(x, y), maze.Blocked); err != nil {
				return fmt.Errorf("fill maze: %w", err)
			}
		}
	}
	return nil
}
