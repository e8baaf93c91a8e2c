package engine

import (
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Collision is a bitmask classifying how a block overlaps the playfield.
type Collision uint8

const (
	CollisionNone Collision = 0
	// CollisionSide: the block's bounding box crosses the left or right wall.
	CollisionSide Collision = 1 << 0
	// CollisionBlock: an occupied cell lands on a locked cell.
	CollisionBlock Collision = 1 << 1
	// CollisionBottom: the block's bounding box extends below the floor.
	CollisionBottom Collision = 1 << 2
)

// Has reports whether every bit of flag is set.
func (c Collision) Has(flag Collision) bool {
	return c&flag == flag
}

func (c Collision) String() string {
	if c == CollisionNone {
		return "none"
	}
	var parts []string
	if c.Has(CollisionSide) {
		parts = append(parts, "side")
	}
	if c.Has(CollisionBlock) {
		parts = append(parts, "block")
	}
	if c.Has(CollisionBottom) {
		parts = append(parts, "bottom")
	}
	return strings.Join(parts, "|")
}

// Playfield is the well of locked cells. A cell holds core.ColorDefault
// when empty and the locking block's color otherwise.
type Playfield struct {
	grid *Grid[core.Color]
}

// NewPlayfield creates an empty playfield of width columns by height rows.
func NewPlayfield(width, height int) *Playfield {
	return &Playfield{grid: NewGrid[core.Color](height, width)}
}

// Width returns the number of columns.
func (p *Playfield) Width() int { return p.grid.Cols() }

// Height returns the number of rows.
func (p *Playfield) Height() int { return p.grid.Rows() }

// Cell returns the color at column x, row y, or ColorDefault outside the field.
func (p *Playfield) Cell(x, y int) core.Color {
	return p.grid.GetOr(y, x, core.ColorDefault)
}

// Grid exposes the underlying cells for read-only use.
func (p *Playfield) Grid() *Grid[core.Color] { return p.grid }

// Collision classifies b against the walls, the floor and locked cells.
// Occupied cells outside the field never count as a block collision.
func (p *Playfield) Collision(b *Block) Collision {
	res := CollisionNone
	m := b.Matrix()

	if b.X < 0 || b.X+m.Cols()-1 >= p.Width() {
		res |= CollisionSide
	}
	if b.Y+m.Rows()-1 >= p.Height() {
		res |= CollisionBottom
	}

	for cx, cy := range b.Cells() {
		r, c := b.Y+cy, b.X+cx
		if !p.grid.GetOr(r, c, core.ColorDefault).IsEmpty() {
			res |= CollisionBlock
			break
		}
	}

	return res
}

// AddBlock locks b's occupied cells into the field. Cells outside the
// field, such as those still above the top row, are dropped.
func (p *Playfield) AddBlock(b *Block) {
	for cx, cy := range b.Cells() {
		r, c := b.Y+cy, b.X+cx
		if p.grid.InBounds(r, c) {
			p.grid.cells[r*p.grid.cols+c] = b.Color
		}
	}
}

// rowFilled reports whether every column of row r is occupied.
func (p *Playfield) rowFilled(r int) bool {
	cols := p.grid.cols
	for _, v := range p.grid.cells[r*cols : (r+1)*cols] {
		if v.IsEmpty() {
			return false
		}
	}
	return true
}

// removeRow deletes row r, moves every row above it down by one and
// clears the top row.
func (p *Playfield) removeRow(r int) {
	cols := p.grid.cols
	copy(p.grid.cells[cols:(r+1)*cols], p.grid.cells[:r*cols])
	clear(p.grid.cells[:cols])
}

// RemoveFilledLines removes every filled row, compacting the rows above
// each one, and returns how many rows were removed.
func (p *Playfield) RemoveFilledLines() int {
	lines := 0
	// Scanning top-down is safe: removing row r only shifts rows above r.
	for r := 0; r < p.Height(); r++ {
		if p.rowFilled(r) {
			p.removeRow(r)
			lines++
		}
	}
	return lines
}
