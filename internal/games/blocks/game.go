// Package blocks adapts the falling-block engine to the platform's Game
// interface: it turns input frames into engine commands through a key
// debouncer and draws the field into a core.Screen.
package blocks

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// gameActions are the actions routed through the debouncer, in the order
// newly pressed keys are applied.
var gameActions = [...]core.Action{
	core.ActionHardDrop,
	core.ActionLeft,
	core.ActionRight,
	core.ActionSoftDrop,
	core.ActionRotateCCW,
	core.ActionRotateCW,
}

// Game implements the blocks game.
type Game struct {
	field *engine.Field
	keys  *core.Debouncer
	cfg   config.BlocksConfig
	tick  uint64
	dt    float64

	highScore  float64
	paused     bool
	fixedSpeed bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new blocks game instance.
func New() *Game {
	return &Game{keys: core.NewDebouncer()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	g.reset(runtime, cfg)
	g.fixedSpeed = config.IsFixedPreset(difficultyPreset) || cfg.Speed.Step == 0
}

func (g *Game) reset(runtime core.RuntimeConfig, cfg config.BlocksConfig) {
	g.cfg = cfg
	g.dt = runtime.Dt()
	g.tick = 0
	g.paused = false
	g.keys.Clear()

	g.field = engine.NewField(cfg.Field.Width, cfg.Field.Height,
		engine.WithRand(rand.New(rand.NewSource(runtime.Seed))),
		engine.WithProgression(Progression(cfg)),
	)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Progression converts the speed and level settings for the engine.
func Progression(cfg config.BlocksConfig) engine.Progression {
	return engine.Progression{
		MinSpeed:      cfg.Speed.Min,
		MaxSpeed:      cfg.Speed.Max,
		SpeedStep:     cfg.Speed.Step,
		LevelInterval: cfg.Levels.Interval,
		StartLevel:    cfg.Levels.Start,
	}
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.over() {
		return core.StepResult{State: g.State()}
	}

	// Pausing forgets held keys so nothing repeats on resume.
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.keys.Clear()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	// A fresh press acts at once, without waiting for the repeat delay.
	// Presses go first so a tap pressed and released in one frame acts
	// once and leaves the key up.
	for _, a := range gameActions {
		if in.Has(a) {
			g.keys.Press(a)
			g.processInput(0)
		}
	}
	for _, a := range gameActions {
		if in.Released(a) {
			g.keys.Release(a)
		}
	}

	g.processInput(g.cfg.Input.KeyDelay)
	g.field.Update(g.dt)

	return core.StepResult{State: g.State()}
}

// processInput applies every key whose counter exceeds delay.
func (g *Game) processInput(delay int) {
	if g.keys.PollOnce(core.ActionHardDrop) > delay {
		g.field.Drop()
	}
	if g.keys.Poll(core.ActionLeft) > delay {
		g.field.Move(engine.Left)
	}
	if g.keys.Poll(core.ActionRight) > delay {
		g.field.Move(engine.Right)
	}
	if g.keys.Poll(core.ActionSoftDrop) > delay {
		g.field.Fall()
	}
	if g.keys.PollOnce(core.ActionRotateCCW) > delay {
		g.field.Rotate(engine.Left)
	}
	if g.keys.PollOnce(core.ActionRotateCW) > delay {
		g.field.Rotate(engine.Right)
	}
}

func (g *Game) over() bool {
	return g.field.State() == engine.StateGameOver
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.field.Points()),
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Result returns the detailed outcome of the current game.
func (g *Game) Result() registry.Result {
	return registry.Result{
		Points: g.field.Points(),
		Lines:  g.field.Lines(),
		Level:  g.field.Level(),
	}
}

// SetHighScore sets the best stored score shown in the HUD.
func (g *Game) SetHighScore(points float64) {
	g.highScore = points
}

// ReleaseAfter returns how long a terminal key may stay silent before it
// counts as released.
func (g *Game) ReleaseAfter() time.Duration {
	return g.cfg.Input.ReleaseAfter()
}

// Field exposes the engine state for read-only use.
func (g *Game) Field() *engine.Field {
	return g.field
}
