package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Snapshot contains the complete observable game state for tests and
// debugging. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Lines     int
	Level     int
	NextLevel int
	Points    float64
	Speed     float64
	State     string
	Paused    bool

	// Active piece
	Piece    string
	Rotation int
	X        int
	Y        int

	// Queue holds the upcoming piece names, front first.
	Queue []string

	// Cells holds the locked colors row-major, 0 = empty.
	Width  int
	Height int
	Cells  []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	f := g.field
	active := f.Active()

	queue := make([]string, 0, len(f.Queue()))
	for _, b := range f.Queue() {
		queue = append(queue, b.Shape().ID().String())
	}

	pf := f.Playfield()
	cells := make([]int, 0, pf.Width()*pf.Height())
	for c := range pf.Grid().All() {
		cells = append(cells, int(c))
	}

	return Snapshot{
		Tick:      g.tick,
		Lines:     f.Lines(),
		Level:     f.Level(),
		NextLevel: f.NextLevel(),
		Points:    f.Points(),
		Speed:     f.Speed(),
		State:     f.State().String(),
		Paused:    g.paused,
		Piece:     active.Shape().ID().String(),
		Rotation:  active.Rotation(),
		X:         active.X,
		Y:         active.Y,
		Queue:     queue,
		Width:     pf.Width(),
		Height:    pf.Height(),
		Cells:     cells,
	}
}

// Occupied returns how many locked cells the snapshot holds.
func (s Snapshot) Occupied() int {
	n := 0
	for _, c := range s.Cells {
		if !core.Color(c).IsEmpty() {
			n++
		}
	}
	return n
}
