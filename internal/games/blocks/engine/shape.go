package engine

import "github.com/vovakirdan/tui-blocks/internal/core"

// ShapeID identifies one of the canonical pieces.
type ShapeID int

const (
	ShapeI ShapeID = iota
	ShapeJ
	ShapeL
	ShapeZ
	ShapeS
	ShapeT
	ShapeO
)

// ShapeCount is the number of canonical pieces.
const ShapeCount = 7

// String returns the conventional one-letter piece name.
func (id ShapeID) String() string {
	switch id {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeO:
		return "O"
	default:
		return "?"
	}
}

// RotationCount is the number of precomputed states per shape.
const RotationCount = 4

// Shape holds a template and its quarter-turn states. A Shape is built once
// and shared by pointer; nothing mutates it after construction.
type Shape struct {
	id     ShapeID
	color  core.Color
	states [RotationCount]*Grid[bool]
}

// NewShape precomputes the four rotation states of template:
// state 0 is the template and each following state is the previous one
// turned clockwise.
func NewShape(id ShapeID, color core.Color, template *Grid[bool]) *Shape {
	s := &Shape{id: id, color: color}
	s.states[0] = template.Clone()
	for i := 0; i < RotationCount-1; i++ {
		s.states[i+1] = s.states[i].Rotate(CW)
	}
	return s
}

// ID returns the shape identifier.
func (s *Shape) ID() ShapeID { return s.id }

// Color returns the color blocks of this shape are drawn and locked with.
func (s *Shape) Color() core.Color { return s.color }

// State returns the shared grid for rotation index i (taken modulo 4).
// Callers must not modify it.
func (s *Shape) State(i int) *Grid[bool] {
	return s.states[wrapRotation(i)]
}

func wrapRotation(i int) int {
	return ((i % RotationCount) + RotationCount) % RotationCount
}

// canonical is the shape table, indexed by ShapeID.
var canonical = buildShapes()

func buildShapes() [ShapeCount]*Shape {
	const x, o = true, false
	return [ShapeCount]*Shape{
		ShapeI: NewShape(ShapeI, core.ColorBrightCyan, GridFromRows([][]bool{
			{x, x, x, x},
		})),
		ShapeJ: NewShape(ShapeJ, core.ColorOrange, GridFromRows([][]bool{
			{o, x},
			{o, x},
			{x, x},
		})),
		ShapeL: NewShape(ShapeL, core.ColorBrightGreen, GridFromRows([][]bool{
			{x, o},
			{x, o},
			{x, x},
		})),
		ShapeZ: NewShape(ShapeZ, core.ColorRed, GridFromRows([][]bool{
			{x, x, o},
			{o, x, x},
		})),
		ShapeS: NewShape(ShapeS, core.ColorBrightYellow, GridFromRows([][]bool{
			{o, x, x},
			{x, x, o},
		})),
		ShapeT: NewShape(ShapeT, core.ColorMagenta, GridFromRows([][]bool{
			{o, x, o},
			{x, x, x},
		})),
		ShapeO: NewShape(ShapeO, core.ColorBlue, GridFromRows([][]bool{
			{x, x},
			{x, x},
		})),
	}
}

// Shapes returns the canonical shapes in ShapeID order.
func Shapes() []*Shape {
	out := make([]*Shape, ShapeCount)
	copy(out, canonical[:])
	return out
}

// ShapeByID returns the canonical shape for id, or nil for an unknown id.
func ShapeByID(id ShapeID) *Shape {
	if id < 0 || int(id) >= ShapeCount {
		return nil
	}
	return canonical[id]
}
