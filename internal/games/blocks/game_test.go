package blocks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.reset(testRuntime(), config.DefaultBlocksConfig())
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func release(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

func idle() core.InputFrame { return core.NewInputFrame() }

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("blocks"))

	g, err := registry.Create("blocks")
	require.NoError(t, err)
	assert.Equal(t, "blocks", g.ID())
	assert.Equal(t, "Blocks", g.Title())

	_, ok := g.(registry.Scored)
	assert.True(t, ok)
}

func TestResetState(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	assert.Equal(t, "playing", s.State)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 10, s.NextLevel)
	assert.Len(t, s.Queue, engine.QueueLen)
	assert.Equal(t, 10, s.Width)
	assert.Equal(t, 20, s.Height)
	assert.Zero(t, s.Occupied())
	assert.Less(t, s.Y, 0)
	assert.Equal(t, core.GameState{}, g.State())
}

func TestSameSeedSameGame(t *testing.T) {
	a, b := newTestGame(t), newTestGame(t)
	for range 30 {
		a.Step(press(core.ActionHardDrop))
		b.Step(press(core.ActionHardDrop))
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestHeldKeyRepeatsAfterDelay(t *testing.T) {
	g := newTestGame(t)
	x0 := g.Snapshot().X

	g.Step(press(core.ActionLeft))
	assert.Equal(t, x0-1, g.Snapshot().X, "fresh press moves at once")

	g.Step(idle())
	assert.Equal(t, x0-1, g.Snapshot().X, "still inside the repeat delay")

	g.Step(idle())
	assert.Equal(t, x0-2, g.Snapshot().X, "repeat starts")

	g.Step(idle())
	assert.Equal(t, x0-3, g.Snapshot().X)
}

func TestReleaseStopsRepeat(t *testing.T) {
	g := newTestGame(t)
	x0 := g.Snapshot().X

	g.Step(press(core.ActionRight))
	g.Step(release(core.ActionRight))
	for range 5 {
		g.Step(idle())
	}
	assert.Equal(t, x0+1, g.Snapshot().X)
}

func TestTapInOneFrameActsOnce(t *testing.T) {
	g := newTestGame(t)
	x0 := g.Snapshot().X

	tap := press(core.ActionLeft)
	tap.Release(core.ActionLeft)
	g.Step(tap)
	assert.Equal(t, x0-1, g.Snapshot().X)

	for range 6 {
		g.Step(idle())
	}
	assert.Equal(t, x0-1, g.Snapshot().X, "the key is up after the tap")
}

func TestRotateOncePerPress(t *testing.T) {
	g := newTestGame(t)
	// Keep the piece well inside the field so no kick interferes.
	g.field.Active().Y = 5

	g.Step(press(core.ActionRotateCW))
	for range 6 {
		g.Step(idle())
	}
	assert.Equal(t, 1, g.Snapshot().Rotation)

	g.Step(press(core.ActionRotateCCW))
	g.Step(press(core.ActionRotateCCW))
	assert.Equal(t, 3, g.Snapshot().Rotation)
}

func TestSoftDrop(t *testing.T) {
	g := newTestGame(t)
	y0 := g.Snapshot().Y

	g.Step(press(core.ActionSoftDrop))
	assert.Equal(t, y0+1, g.Snapshot().Y)
}

func TestHardDropLocks(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	g.Step(press(core.ActionHardDrop))
	after := g.Snapshot()

	assert.Equal(t, 4, after.Occupied())
	assert.Greater(t, after.Points, 0.0)
	assert.Equal(t, before.Queue[0], after.Piece)
	assert.Len(t, after.Queue, engine.QueueLen)
}

func TestPause(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionLeft))

	res := g.Step(press(core.ActionPause))
	assert.True(t, res.State.Paused)

	frozen := g.Snapshot()
	for range 40 {
		g.Step(idle())
	}
	assert.Equal(t, frozen, g.Snapshot(), "nothing moves while paused")

	res = g.Step(press(core.ActionPause))
	assert.False(t, res.State.Paused)

	// The held key was forgotten on pause.
	x := g.Snapshot().X
	for range 5 {
		g.Step(idle())
	}
	assert.Equal(t, x, g.Snapshot().X)
}

func TestGravity(t *testing.T) {
	g := newTestGame(t)
	y0 := g.Snapshot().Y

	// 20 ticks at 20 Hz is one second, five rows at the starting speed.
	for range 20 {
		g.Step(idle())
	}
	y := g.Snapshot().Y
	assert.GreaterOrEqual(t, y, y0+4)
	assert.LessOrEqual(t, y, y0+5)
}

func TestGameOver(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 200 && !g.State().GameOver; i++ {
		g.Step(press(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver)

	s := g.Snapshot()
	assert.Equal(t, "game_over", s.State)

	g.Step(press(core.ActionHardDrop, core.ActionPause))
	assert.Equal(t, s, g.Snapshot(), "finished game ignores input")
	assert.False(t, g.State().Paused)

	res := g.Result()
	assert.Equal(t, s.Points, res.Points)
	assert.Equal(t, s.Lines, res.Lines)
	assert.Equal(t, s.Level, res.Level)
	assert.Equal(t, int(s.Points), g.State().Score)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "GAME OVER")
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(1234)
	g.Step(press(core.ActionHardDrop))

	scr := core.NewScreen(80, 30)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"BLOCKS", "Lines:", "Level:", "Next in: 10", "Speed:   5/s", "Points:", "Best:    1,234", "Next:"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 8, strings.Count(out, string(BlockGlyph))-queueGlyphs(g)-activeGlyphs(g),
		"four locked cells two columns wide")
}

// queueGlyphs counts the block glyphs drawn by the queue preview.
func queueGlyphs(g *Game) int {
	n := 0
	for _, b := range g.field.Queue() {
		for range b.Cells() {
			n += cellWidth
		}
	}
	return n
}

// activeGlyphs counts the visible glyphs of the falling block.
func activeGlyphs(g *Game) int {
	b := g.field.Active()
	n := 0
	for _, cy := range b.Cells() {
		if b.Y+cy >= 0 {
			n += cellWidth
		}
	}
	return n
}

func TestRenderFractionalPoints(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(98765.4)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "Points:  0")
	assert.Contains(t, out, "Best:    98,765.4")
	assert.NotContains(t, out, "fixed")
}

func TestRenderFixedSpeed(t *testing.T) {
	SetDifficultyPreset("fixed")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(testRuntime())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "/s fixed")
}

func TestDrawCenteredStaysInside(t *testing.T) {
	scr := core.NewScreen(20, 6)
	box := core.NewRect(2, 0, 6, 6)
	drawCentered(scr, box, "GAME OVER", "R")

	rows := strings.Split(scr.String(), "\n")
	assert.True(t, strings.HasPrefix(rows[2], "   GAME OVER"), "long text starts after the border: %q", rows[2])
	assert.Equal(t, 'R', []rune(rows[3])[4])
}

func TestDrawBlockClipsToField(t *testing.T) {
	g := newTestGame(t)
	b := g.field.Active()
	b.Y = -2
	b.X = -2

	scr := core.NewScreen(40, 30)
	bounds := core.NewRect(0, 0, g.field.Width(), g.field.Height())
	drawBlock(scr, bounds, 2, 2, b, BlockGlyph, b.Color)

	want := 0
	for cx, cy := range b.Cells() {
		if bounds.Contains(b.X+cx, b.Y+cy) {
			want += cellWidth
		}
	}
	assert.Less(t, want, 4*cellWidth)
	assert.Equal(t, want, strings.Count(scr.String(), string(BlockGlyph)))
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionPause))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t)
	g.Resize(30, 10)

	assert.True(t, g.State().Paused)
	frozen := g.Snapshot()
	g.Step(press(core.ActionHardDrop))
	assert.Equal(t, frozen, g.Snapshot())

	scr := core.NewScreen(30, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	// Growing the window resumes the same game.
	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
	assert.Equal(t, frozen.Queue, g.Snapshot().Queue)
}

func TestResetLoadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field: {width: 12, height: 18}\nlevels: {start: 3}\n"), 0o600))

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(testRuntime())
	s := g.Snapshot()

	assert.Equal(t, 12, s.Width)
	assert.Equal(t, 18, s.Height)
	assert.Equal(t, 3, s.Level)
	assert.Equal(t, 8.0, s.Speed)
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime())
	assert.Equal(t, 10, g.Snapshot().Width)
}

func TestSetDifficultyPresetUnknown(t *testing.T) {
	SetDifficultyPreset("nightmare")
	t.Cleanup(func() { SetDifficultyPreset("") })
	assert.Equal(t, config.DifficultyPreset(""), difficultyPreset)
}

func TestProgression(t *testing.T) {
	cfg := config.DefaultBlocksConfig()
	assert.Equal(t, engine.DefaultProgression(), Progression(cfg))
}

func TestReleaseAfter(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, int64(150), g.ReleaseAfter().Milliseconds())
}
