package collector

import (
	"fmt"
	"math"

	"github.com/vovakirdan/the-collector/internal/assets"
	"github.com/vovakirdan/the-collector/internal/core"
)

// Minimum field size in cells below which only a notice is drawn.
const (
	minFieldW = 20
	minFieldH = 10
)

// viewport maps world coordinates onto a square-looking block of cells.
// Terminal cells are roughly twice as tall as wide, so the field uses two
// columns per row.
type viewport struct {
	field core.Rect
	half  float64 // World half-width shown by the field
}

func newViewport(screenW, screenH int, half float64) viewport {
	h := screenH - 1 // Bottom row is left for the help line
	w := min(screenW, 2*h)
	h = min(h, w/2+1)
	return viewport{
		field: core.NewRect((screenW-w)/2, 0, w, h),
		half:  half,
	}
}

// inner is the field without its border cells.
func (v viewport) inner() core.Rect {
	return core.NewRect(v.field.X+1, v.field.Y+1, v.field.W-2, v.field.H-2)
}

// cell converts a world position to a screen cell.
func (v viewport) cell(p core.Vec) (int, int) {
	span := 2 * v.half
	col := v.field.X + int(math.Round((p.X+v.half)/span*float64(v.field.W-1)))
	row := v.field.Y + int(math.Round((v.half-p.Y)/span*float64(v.field.H-1)))
	return col, row
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.phase {
	case PhaseTitle:
		g.drawTitle(dst)
		return
	case PhaseGameOver:
		g.drawSummary(dst)
		return
	}

	vp := newViewport(dst.Width(), dst.Height(), g.cfg.Field.Border)
	if vp.field.W < minFieldW || vp.field.H < minFieldH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorGray)
		return
	}

	dst.DrawBox(vp.field, core.ColorWhite)

	a := g.state.Arena
	g.drawSprite(dst, vp, a.Collectible.Pos, g.crateSprite(a.Collectible.Variant))
	for _, o := range a.Obstacles() {
		g.drawSprite(dst, vp, o.Pos, g.sprites.Asteroid)
	}
	g.drawSprite(dst, vp, a.Player.Pos, g.shipSprite(a.Player.Facing))

	hud := fmt.Sprintf("Score: %d High Score: %d", g.state.Score, g.state.HighScore)
	dst.DrawTextColored(vp.field.X+2, vp.field.Y+1, hud, core.ColorWhite)
}

func (g *Game) drawSprite(dst *core.Screen, vp viewport, p core.Vec, s assets.Sprite) {
	x, y := vp.cell(p)
	// Sprites never overwrite the border.
	if !vp.inner().Contains(x, y) {
		return
	}
	dst.SetColored(x, y, s.Glyph, s.Color)
}

func (g *Game) shipSprite(d Direction) assets.Sprite {
	switch d {
	case DirDown:
		return g.sprites.ShipDown
	case DirLeft:
		return g.sprites.ShipLeft
	case DirRight:
		return g.sprites.ShipRight
	default:
		return g.sprites.ShipUp
	}
}

func (g *Game) crateSprite(v Variant) assets.Sprite {
	if v == VariantCrateB {
		return g.sprites.Crates[1]
	}
	return g.sprites.Crates[0]
}

// drawTitle renders the start screen.
func (g *Game) drawTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-4, g.Title(), core.ColorBrightWhite)
	dst.DrawTextCentered(mid-2, "Collect Materials, Avoid Asteroids,", core.ColorWhite)
	dst.DrawTextCentered(mid-1, "and Don't Go Beyond Border", core.ColorWhite)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("High Score: %d", g.state.HighScore), core.ColorGray)
	dst.DrawTextCentered(mid+3, "Press SPACE to Start", core.ColorBrightYellow)
}

// drawSummary renders the final score box.
func (g *Game) drawSummary(dst *core.Screen) {
	lines := []string{
		"Game Over!",
		fmt.Sprintf("Final Score: %d", g.state.Score),
		fmt.Sprintf("High Score: %d", g.state.HighScore),
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 6
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+2+i, l, core.ColorBrightWhite)
	}
}
