package engine

import (
	"iter"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Block is a positioned instance of a Shape. X is the column offset and Y
// the row offset of the active matrix's top-left corner; Y may be negative
// while the piece is still above the visible field.
type Block struct {
	shape    *Shape
	rotation int
	matrix   *Grid[bool]

	X     int
	Y     int
	Color core.Color
}

// NewBlock creates a block of shape s in rotation state 0 at the origin.
func NewBlock(s *Shape) *Block {
	return &Block{
		shape:  s,
		matrix: s.State(0),
		Color:  s.Color(),
	}
}

// Shape returns the shared shape this block instantiates.
func (b *Block) Shape() *Shape { return b.shape }

// Rotation returns the current rotation index in [0, 4).
func (b *Block) Rotation() int { return b.rotation }

// Matrix returns the occupancy grid of the current rotation state.
func (b *Block) Matrix() *Grid[bool] { return b.matrix }

// Rotate switches to the neighbouring precomputed state.
func (b *Block) Rotate(dir Rotation) {
	b.rotation = wrapRotation(b.rotation + int(dir))
	b.matrix = b.shape.State(b.rotation)
}

// Cells yields the (col, row) offset of every occupied cell of the current
// matrix in row-major order. The sequence can be ranged over repeatedly.
func (b *Block) Cells() iter.Seq2[int, int] {
	m := b.matrix
	return func(yield func(int, int) bool) {
		i := 0
		for occupied := range m.All() {
			if occupied && !yield(i%m.Cols(), i/m.Cols()) {
				return
			}
			i++
		}
	}
}

// Clone returns a copy sharing the same shape.
func (b *Block) Clone() *Block {
	c := *b
	return &c
}
