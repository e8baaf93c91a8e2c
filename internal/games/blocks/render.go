package blocks

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

const (
	cellWidth = 2  // Screen columns per field cell
	hudWidth  = 18 // Columns reserved right of the well
	hudGap    = 2
)

// Visual characters for rendering
const (
	BlockGlyph = '█'
	GhostGlyph = '░'
	EmptyGlyph = '·'
)

// minSize returns the smallest screen that fits the well, its border,
// the title row and the HUD.
func (g *Game) minSize() (int, int) {
	w := g.cfg.Field.Width*cellWidth + 2 + hudGap + hudWidth
	h := g.cfg.Field.Height + 2 + 1
	return w, h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	totalW, _ := g.minSize()
	wellX := max((dst.Width()-totalW)/2, 0)
	wellY := 1
	well := core.NewRect(wellX, wellY, g.field.Width()*cellWidth+2, g.field.Height()+2)

	dst.DrawTextColor(well.X+(well.W-6)/2, 0, "BLOCKS", core.ColorBrightWhite)
	dst.DrawBox(well, core.ColorGray)

	g.renderField(dst, well.X+1, well.Y+1)
	g.renderHUD(dst, well.Right()+hudGap, wellY)

	if g.paused {
		drawCentered(dst, well, "PAUSED", "P to resume")
	}
	if g.over() {
		drawCentered(dst, well, "GAME OVER", "R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, dst.Width(), dst.Height()))
}

// renderField draws locked cells, the landing preview and the active
// block with the field's top-left cell at (ox, oy).
func (g *Game) renderField(dst *core.Screen, ox, oy int) {
	pf := g.field.Playfield()
	for y := range pf.Height() {
		for x := range pf.Width() {
			if c := pf.Cell(x, y); !c.IsEmpty() {
				drawCell(dst, ox, oy, x, y, BlockGlyph, c)
			} else {
				dst.SetColor(ox+x*cellWidth+1, oy+y, EmptyGlyph, core.ColorGray)
			}
		}
	}

	if g.over() {
		return
	}

	bounds := core.NewRect(0, 0, pf.Width(), pf.Height())
	active := g.field.Active()
	ghost := g.field.Ghost()
	if ghost.Y != active.Y {
		drawBlock(dst, bounds, ox, oy, ghost, GhostGlyph, active.Color)
	}
	drawBlock(dst, bounds, ox, oy, active, BlockGlyph, active.Color)
}

// renderHUD draws the counters and the queue preview starting at (x, y).
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	f := g.field
	lines := []string{
		fmt.Sprintf("Lines:   %d", f.Lines()),
		fmt.Sprintf("Level:   %d", f.Level()),
		fmt.Sprintf("Next in: %d", f.NextLevel()-f.Lines()),
		"Speed:   " + g.speedLabel(),
		"Points:  " + humanize.CommafWithDigits(f.Points(), 1),
	}
	if g.highScore > 0 {
		lines = append(lines, "Best:    "+humanize.CommafWithDigits(max(g.highScore, f.Points()), 1))
	}
	for i, l := range lines {
		dst.DrawText(x, y+i, l)
	}

	y += len(lines) + 1
	dst.DrawTextColor(x, y, "Next:", core.ColorGray)
	y++

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	for _, b := range f.Queue() {
		m := b.Matrix()
		if !screen.Contains(x, y+m.Rows()-1) {
			break
		}
		for cx, cy := range b.Cells() {
			drawCell(dst, x, y, cx, cy, BlockGlyph, b.Color)
		}
		y += m.Rows() + 1
	}
}

// speedLabel formats the fall speed, marking a speed that never grows.
func (g *Game) speedLabel() string {
	s := humanize.FtoaWithDigits(g.field.Speed(), 1) + "/s"
	if g.fixedSpeed {
		s += " fixed"
	}
	return s
}

// drawBlock draws the cells of b that fall inside the field bounds.
func drawBlock(dst *core.Screen, bounds core.Rect, ox, oy int, b *engine.Block, glyph rune, c core.Color) {
	for cx, cy := range b.Cells() {
		if !bounds.Contains(b.X+cx, b.Y+cy) {
			continue
		}
		drawCell(dst, ox, oy, b.X+cx, b.Y+cy, glyph, c)
	}
}

// drawCell paints field cell (x, y) as cellWidth glyphs.
func drawCell(dst *core.Screen, ox, oy, x, y int, glyph rune, c core.Color) {
	for i := range cellWidth {
		dst.SetColor(ox+x*cellWidth+i, oy+y, glyph, c)
	}
}

// drawCentered writes a two-line message in the middle of r, keeping the
// first column clear of the left border.
func drawCentered(dst *core.Screen, r core.Rect, title, hint string) {
	_, cy := r.Center()
	for i, text := range []string{title, hint} {
		n := len([]rune(text))
		x := core.Clamp(r.X+(r.W-n)/2, r.X+1, r.Right()-1)
		dst.DrawTextColor(x, cy-1+i, text, core.ColorBrightWhite)
	}
}
