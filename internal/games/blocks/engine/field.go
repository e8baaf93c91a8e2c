package engine

import (
	"math/rand"
	"time"
)

// QueueLen is the number of upcoming blocks kept in the lookahead queue.
const QueueLen = 4

// Move directions.
const (
	Left  = -1
	Right = 1
)

// Default progression values.
const (
	MinSpeed      = 5
	MaxSpeed      = 20
	SpeedStep     = 1
	LevelInterval = 10
	StartLevel    = 1
)

// State is the session state of a Field.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Progression controls how fall speed and level grow with cleared lines.
// Speeds are in falls per second.
type Progression struct {
	MinSpeed      float64
	MaxSpeed      float64
	SpeedStep     float64
	LevelInterval int
	StartLevel    int
}

// DefaultProgression returns the standard speed and level curve.
func DefaultProgression() Progression {
	return Progression{
		MinSpeed:      MinSpeed,
		MaxSpeed:      MaxSpeed,
		SpeedStep:     SpeedStep,
		LevelInterval: LevelInterval,
		StartLevel:    StartLevel,
	}
}

// Field owns the playfield, the falling block and the scoring state.
// It is driven by discrete commands plus Update and is not safe for
// concurrent use.
type Field struct {
	width  int
	height int

	dump   *Playfield
	block  *Block
	queue  []*Block
	rng    *rand.Rand
	prog   Progression
	state  State
	points float64

	lines     int
	level     int
	nextLevel int
	speed     float64
	elapsed   float64
}

// FieldOption configures a Field at construction.
type FieldOption func(*Field)

// WithRand sets the random source used to pick pieces.
func WithRand(rng *rand.Rand) FieldOption {
	return func(f *Field) {
		f.rng = rng
	}
}

// WithProgression replaces the default speed and level curve.
func WithProgression(p Progression) FieldOption {
	return func(f *Field) {
		f.prog = p
	}
}

// NewField creates a field of width columns by height rows with a full
// lookahead queue and the first block spawned above the visible area.
func NewField(width, height int, opts ...FieldOption) *Field {
	f := &Field{
		width:  width,
		height: height,
		dump:   NewPlayfield(width, height),
		prog:   DefaultProgression(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	f.queue = make([]*Block, 0, QueueLen+1)
	for len(f.queue) < QueueLen {
		f.queueNewBlock()
	}
	f.nextBlock()

	f.level = f.prog.StartLevel
	f.nextLevel = f.prog.LevelInterval
	f.speed = f.prog.MinSpeed
	f.state = StatePlaying
	return f
}

func (f *Field) queueNewBlock() {
	s := canonical[f.rng.Intn(ShapeCount)]
	f.queue = append(f.queue, NewBlock(s))
}

// nextBlock dequeues the front of the queue into the active slot and
// tops the queue back up.
func (f *Field) nextBlock() {
	b := f.queue[0]
	f.queue[0] = nil
	f.queue = f.queue[1:]

	b.X = f.dump.Width()/2 - b.Matrix().Cols()/2
	b.Y = -b.Matrix().Rows()
	f.block = b

	f.queueNewBlock()
	assertf(len(f.queue) == QueueLen, "queue length %d after dequeue, want %d", len(f.queue), QueueLen)
}

// Update advances gravity by dt seconds. The accumulator keeps its
// fractional remainder between calls.
func (f *Field) Update(dt float64) {
	if f.state == StateGameOver {
		return
	}

	f.elapsed += dt
	for f.state == StatePlaying && f.elapsed > 1.0/f.speed {
		f.elapsed -= 1.0 / f.speed
		f.Fall()
		if f.lines >= f.nextLevel {
			f.level++
			f.speed = min(f.speed+f.prog.SpeedStep, f.prog.MaxSpeed)
			f.nextLevel += f.prog.LevelInterval
		}
	}
}

// Move shifts the active block one column in the direction of dir's sign.
// The shift is undone if it collides with anything.
func (f *Field) Move(dir int) {
	step := sign(dir)
	f.block.X += step
	if f.dump.Collision(f.block) != CollisionNone {
		f.block.X -= step
	}
}

// Rotate turns the active block, applying a wall or floor kick when the
// turned block would collide. Rejected rotations leave the block as is.
func (f *Field) Rotate(dir int) {
	b := f.block.Clone()
	b.Rotate(Rotation(sign(dir)))
	col := f.dump.Collision(b)

	switch {
	case col.Has(CollisionSide | CollisionBlock):
		return
	case col.Has(CollisionSide):
		b.X = f.dump.Width() - b.Matrix().Cols()
		if f.dump.Collision(b) == CollisionNone {
			f.block = b
		}
	case col.Has(CollisionBlock):
		// Right first, then left.
		b.X++
		if f.dump.Collision(b) == CollisionNone {
			f.block = b
			return
		}
		b.X -= 2
		if f.dump.Collision(b) == CollisionNone {
			f.block = b
		}
	case col.Has(CollisionBottom):
		b.Y = f.dump.Height() - b.Matrix().Rows()
		if f.dump.Collision(b) == CollisionNone {
			f.block = b
		}
	default:
		f.block = b
	}
}

// Fall moves the active block down one row. When it cannot move it is
// locked, full lines are cleared and scored, and the next block spawns.
// Fall reports whether a lock happened.
func (f *Field) Fall() bool {
	f.block.Y++
	if f.dump.Collision(f.block)&(CollisionBlock|CollisionBottom) == 0 {
		return false
	}

	f.block.Y--
	f.dump.AddBlock(f.block)
	if f.block.Y < 0 {
		f.state = StateGameOver
	}

	cleared := f.dump.RemoveFilledLines()
	f.lines += cleared
	f.points += float64(f.level * cleared * cleared)

	f.nextBlock()
	return true
}

// Drop lets the active block fall until it locks and awards a bonus
// proportional to the distance dropped. It returns the number of falls.
func (f *Field) Drop() int {
	cur := f.block
	falls := 0
	for f.block == cur {
		f.Fall()
		falls++
	}
	f.points += float64(falls) / float64(max(f.height/3, 1))
	return falls
}

// Ghost returns a copy of the active block moved down to where it would
// lock. The field is not modified.
func (f *Field) Ghost() *Block {
	g := f.block.Clone()
	for {
		g.Y++
		if f.dump.Collision(g)&(CollisionBlock|CollisionBottom) != 0 {
			g.Y--
			return g
		}
	}
}

// Playfield returns the locked-cell well.
func (f *Field) Playfield() *Playfield { return f.dump }

// Active returns the falling block.
func (f *Field) Active() *Block { return f.block }

// Queue returns the upcoming blocks, front first.
func (f *Field) Queue() []*Block {
	out := make([]*Block, len(f.queue))
	copy(out, f.queue)
	return out
}

// Width returns the field width in columns.
func (f *Field) Width() int { return f.width }

// Height returns the field height in rows.
func (f *Field) Height() int { return f.height }

// Lines returns the total number of cleared lines.
func (f *Field) Lines() int { return f.lines }

// Level returns the current level.
func (f *Field) Level() int { return f.level }

// NextLevel returns the line count at which the next level starts.
func (f *Field) NextLevel() int { return f.nextLevel }

// Points returns the score.
func (f *Field) Points() float64 { return f.points }

// Speed returns the fall rate in rows per second.
func (f *Field) Speed() float64 { return f.speed }

// State returns the session state.
func (f *Field) State() State { return f.state }

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
