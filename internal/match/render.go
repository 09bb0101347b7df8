package match

import (
	"fmt"

	"github.com/vovakirdan/shapematch/internal/core"
	"github.com/vovakirdan/shapematch/internal/shapes"
)

// HUD and banner placement in canvas units.
var (
	hudTimePos  = core.Pt(20, 40)
	hudScorePos = core.Pt(20, 80)
	bannerY     = 313
	labelDX     = -40
	labelDY     = 30 // Below the slot's bottom edge
)

var (
	hudStyle    = shapes.TextStyle{Size: 1, Color: core.ColorWhite}
	scoreStyle  = shapes.TextStyle{Size: 1, Color: core.ColorScore}
	labelStyle  = shapes.TextStyle{Size: 0.6, Color: core.ColorWhite}
	bannerStyle = shapes.TextStyle{Size: 1.5, Color: core.ColorBanner}
)

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	canvas := shapes.NewCanvas(dst, g.cfg.Canvas.Width, g.cfg.Canvas.Height)
	size := g.cfg.Gameplay.ShapeSize

	g.bg.Render(canvas)

	state := g.State()
	canvas.Text(hudTimePos, fmt.Sprintf("Time: %d", SecondsLeft(state.Remaining)), hudStyle)
	canvas.Text(hudScorePos, fmt.Sprintf("Score: %d", state.Score), scoreStyle)

	tokens := g.session.tokens

	// Target slots, green once filled
	for i, t := range tokens {
		c := g.slotColor
		if t.Placed {
			c = g.placedColor
		}
		g.drawers[i](canvas, t.Target, size, c)
		canvas.Text(core.Pt(t.Target.X+labelDX, t.Target.Y+size+labelDY), t.Name, labelStyle)
	}

	// Unplaced tokens at their live positions, the dragged one on top
	dragged := -1
	if d, ok := g.session.Drag(); ok {
		dragged = d.Token
	}
	for i, t := range tokens {
		if t.Placed || i == dragged {
			continue
		}
		g.drawers[i](canvas, t.Pos, size, t.Color)
	}
	if dragged >= 0 {
		t := tokens[dragged]
		g.drawers[dragged](canvas, t.Pos, size, t.Color)
	}

	if g.Finished() {
		g.renderBanner(canvas)
	}
}

// BannerText is the game over message for score.
func BannerText(score int) string {
	return fmt.Sprintf("Game Over | Final Score: %d", score)
}

// renderBanner draws the centered game over message in a cleared box.
func (g *Game) renderBanner(canvas *shapes.Canvas) {
	text := BannerText(g.session.Score())
	screen := canvas.Screen()
	_, row := canvas.Viewport().ToCell(core.Pt(0, bannerY))

	w := len(text) + 4
	box := core.NewRect((screen.Width()-w)/2, row-1, w, 3)
	screen.DrawRect(box, ' ', core.ColorDefault)
	screen.DrawBox(box, bannerStyle.Color)
	canvas.TextCentered(bannerY, text, bannerStyle)
}
