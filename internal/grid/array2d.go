// Package grid provides the fixed-size 2D container the maze is stored in,
// its one-rune-per-cell text format, and conversion between cells and world
// positions.
package grid

import (
	"errors"
	"fmt"
)

// ErrBadSize is returned when a grid is requested with a non-positive dimension.
var ErrBadSize = errors.New("grid dimensions must be positive")

// Array2D is a row-major, fixed-size 2D array.
type Array2D[T comparable] struct {
	data          []T
	width, height int
}

// New allocates a width×height array with every cell set to init.
func New[T comparable](width, height int, init T) (*Array2D[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, width, height)
	}
	data := make([]T, width*height)
	for i := range data {
		data[i] = init
	}
	return &Array2D[T]{data: data, width: width, height: height}, nil
}

func (a *Array2D[T]) Width() int  { return a.width }
func (a *Array2D[T]) Height() int { return a.height }

// InBounds reports whether c addresses a cell of a.
func (a *Array2D[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < a.width && c.Y >= 0 && c.Y < a.height
}

func (a *Array2D[T]) index(c Coord) int {
	if !a.InBounds(c) {
		panic(fmt.Sprintf("grid: %v out of bounds for %dx%d", c, a.width, a.height))
	}
	return c.Y*a.width + c.X
}

// Get returns the value at c. Panics if c is out of bounds.
func (a *Array2D[T]) Get(c Coord) T {
	return a.data[a.index(c)]
}

// Lookup returns the value at c and whether c was in bounds.
func (a *Array2D[T]) Lookup(c Coord) (T, bool) {
	if !a.InBounds(c) {
		var zero T
		return zero, false
	}
	return a.data[c.Y*a.width+c.X], true
}

// Set stores v at c. Panics if c is out of bounds.
func (a *Array2D[T]) Set(c Coord, v T) {
	a.data[a.index(c)] = v
}

// Fill sets every cell to v.
func (a *Array2D[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}

// Each calls fn for every cell, rows first (y outer, x inner).
func (a *Array2D[T]) Each(fn func(c Coord, v T)) {
	for y := 0; y < a.height; y++ {
		for x := 0; x < a.width; x++ {
			fn(Coord{x, y}, a.data[y*a.width+x])
		}
	}
}

// Find returns the first cell, rows first, whose value satisfies pred.
func (a *Array2D[T]) Find(pred func(T) bool) (Coord, bool) {
	for i, v := range a.data {
		if pred(v) {
			return Coord{i % a.width, i / a.width}, true
		}
	}
	return Coord{}, false
}

// Equal reports whether a and o have the same dimensions and contents.
func (a *Array2D[T]) Equal(o *Array2D[T]) bool {
	if a == nil || o == nil {
		return a == o
	}
	if a.width != o.width || a.height != o.height {
		return false
	}
	n := a.width * a.height
	for i := 0; i < n; i++ {
		if a.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of a.
func (a *Array2D[T]) Clone() *Array2D[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array2D[T]{data: data, width: a.width, height: a.height}
}
