// Package pathfind finds shortest 4-connected paths across the maze grid
// with A*.
package pathfind

import (
	"container/heap"
	"errors"
	"fmt"

	"maze-shooter/internal/grid"

	"github.com/zyedidia/generic/mapset"
)

var (
	ErrOutOfBounds = errors.New("endpoint outside the grid")
	ErrUnreachable = errors.New("goal is not reachable")
	ErrSearchLimit = errors.New("search expansion limit reached")
)

// Graph is the walkability view A* searches. *maze.Maze satisfies it.
type Graph interface {
	InBounds(c grid.Coord) bool
	IsWalkable(c grid.Coord) bool
}

type options struct {
	maxExpansions int
}

// Option tunes a search.
type Option func(*options)

// WithMaxExpansions stops the search with ErrSearchLimit after n nodes have
// been expanded. Zero or negative means unlimited.
func WithMaxExpansions(n int) Option {
	return func(o *options) { o.maxExpansions = n }
}

// node is one open-set entry. Entries go stale when a cheaper route to the
// same cell is pushed later; stale entries are skipped on pop.
type node struct {
	coord grid.Coord
	g, h  int
	seq   int
}

func (n node) f() int { return n.g + n.h }

type openSet []node

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f() != o[j].f() {
		return o[i].f() < o[j].f()
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)   { *o = append(*o, x.(node)) }
func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

// Find returns the shortest path from 'from' to 'to', both included.
// Moves are orthogonal with unit cost and the heuristic is the Manhattan
// distance, which never overestimates, so the first time the goal is popped
// its path is optimal. The start cell itself need not be walkable.
func Find(g Graph, from, to grid.Coord, opts ...Option) ([]grid.Coord, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, fmt.Errorf("path %v -> %v: %w", from, to, ErrOutOfBounds)
	}
	if from == to {
		return []grid.Coord{from}, nil
	}
	if !g.IsWalkable(to) {
		return nil, fmt.Errorf("path %v -> %v: %w", from, to, ErrUnreachable)
	}

	gCost := map[grid.Coord]int{from: 0}
	parent := make(map[grid.Coord]grid.Coord)
	closed := mapset.New[grid.Coord]()

	open := &openSet{}
	seq := 0
	heap.Push(open, node{coord: from, h: grid.Manhattan(from, to), seq: seq})

	expanded := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		if closed.Has(cur.coord) {
			continue
		}
		if cur.coord == to {
			return reconstruct(parent, from, to), nil
		}
		closed.Put(cur.coord)

		expanded++
		if o.maxExpansions > 0 && expanded > o.maxExpansions {
			return nil, fmt.Errorf("path %v -> %v after %d nodes: %w", from, to, o.maxExpansions, ErrSearchLimit)
		}

		for _, next := range cur.coord.Neighbors4() {
			if closed.Has(next) || !g.InBounds(next) || !g.IsWalkable(next) {
				continue
			}
			ng := cur.g + 1
			if old, seen := gCost[next]; seen && ng >= old {
				continue
			}
			gCost[next] = ng
			parent[next] = cur.coord
			seq++
			heap.Push(open, node{coord: next, g: ng, h: grid.Manhattan(next, to), seq: seq})
		}
	}
	return nil, fmt.Errorf("path %v -> %v: %w", from, to, ErrUnreachable)
}

func reconstruct(parent map[grid.Coord]grid.Coord, from, to grid.Coord) []grid.Coord {
	path := []grid.Coord{to}
	for c := to; c != from; {
		c = parent[c]
		path = append(path, c)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
