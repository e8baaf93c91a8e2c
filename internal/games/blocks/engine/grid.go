// Package engine implements the falling-block rules: rotation tables,
// collision classification, locking, line clearing and the level/speed
// progression. It has no dependencies on the terminal platform.
package engine

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Rotation is a quarter-turn direction. Adding it to a rotation index
// advances through a shape's precomputed states.
type Rotation int

const (
	CCW Rotation = -1
	CW  Rotation = 1
)

var (
	// ErrNegativeIndex is returned for a row or column below zero.
	ErrNegativeIndex = errors.New("negative index")
	// ErrIndexTooLarge is returned for a row or column past the grid edge.
	ErrIndexTooLarge = errors.New("index too large")
)

// IndexError describes an out-of-bounds grid access.
type IndexError struct {
	Row, Col int
	Err      error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: (%d, %d): %v", e.Row, e.Col, e.Err)
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

// Grid is a fixed-size, row-major 2D container. The zero value of T is
// treated as an empty cell.
type Grid[T comparable] struct {
	rows  int
	cols  int
	cells []T
}

// NewGrid creates a grid with the given dimensions. Dimensions are taken
// by absolute value and never drop below 1.
func NewGrid[T comparable](rows, cols int) *Grid[T] {
	rows = max(abs(rows), 1)
	cols = max(abs(cols), 1)
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// GridFromRows builds a grid from a rectangular slice of rows.
// Short rows are padded with the zero value.
func GridFromRows[T comparable](rows [][]T) *Grid[T] {
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	g := NewGrid[T](len(rows), cols)
	for r, row := range rows {
		copy(g.cells[r*g.cols:], row)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

func (g *Grid[T]) check(r, c int) error {
	if r < 0 || c < 0 {
		return &IndexError{Row: r, Col: c, Err: ErrNegativeIndex}
	}
	if r >= g.rows || c >= g.cols {
		return &IndexError{Row: r, Col: c, Err: ErrIndexTooLarge}
	}
	return nil
}

// Get returns the value at (r, c).
func (g *Grid[T]) Get(r, c int) (T, error) {
	if err := g.check(r, c); err != nil {
		var zero T
		return zero, err
	}
	return g.cells[r*g.cols+c], nil
}

// Set stores v at (r, c).
func (g *Grid[T]) Set(r, c int, v T) error {
	if err := g.check(r, c); err != nil {
		return err
	}
	g.cells[r*g.cols+c] = v
	return nil
}

// GetOr returns the value at (r, c), or def when (r, c) is out of bounds.
func (g *Grid[T]) GetOr(r, c int, def T) T {
	if g.check(r, c) != nil {
		return def
	}
	return g.cells[r*g.cols+c]
}

// InBounds reports whether (r, c) addresses a cell of the grid.
func (g *Grid[T]) InBounds(r, c int) bool {
	return g.check(r, c) == nil
}

// All yields every cell value in row-major order.
func (g *Grid[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rotate returns a new grid turned a quarter in the given direction.
// The result has the source's dimensions swapped. Source cells are read
// in row-major order; the i-th one lands at dest[c][r] where (r, c) is
// the i-th pair of the direction's index order.
func (g *Grid[T]) Rotate(dir Rotation) *Grid[T] {
	res := NewGrid[T](g.cols, g.rows)

	order := cwOrder(g.rows, g.cols)
	if dir != CW {
		order = ccwOrder(g.rows, g.cols)
	}

	i := 0
	for r, c := range order {
		res.cells[c*res.cols+r] = g.cells[i]
		i++
	}
	return res
}

// cwOrder visits rows last to first and, within a row, columns first to last.
func cwOrder(rows, cols int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := rows - 1; r >= 0; r-- {
			for c := 0; c < cols; c++ {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// ccwOrder visits rows first to last and, within a row, columns last to first.
func ccwOrder(rows, cols int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for r := 0; r < rows; r++ {
			for c := cols - 1; c >= 0; c-- {
				if !yield(r, c) {
					return
				}
			}
		}
	}
}

// String renders the grid one bracketed row per line.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.WriteByte('[')
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprint(&sb, g.cells[r*g.cols+c])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
