package loop

import (
	"fmt"
	"strconv"

	"github.com/tomz197/destroyds/internal/config"
	"github.com/tomz197/destroyds/internal/draw"
	"github.com/tomz197/destroyds/internal/object"
	"github.com/tomz197/destroyds/internal/physics"
)

var (
	centered = draw.TextStyle{Anchor: draw.AnchorCenter}
	heading  = draw.TextStyle{Anchor: draw.AnchorCenter, Color: draw.ColorBold}
	hint     = draw.TextStyle{Anchor: draw.AnchorCenter, Color: draw.ColorGray}
)

const controlsHelp = "Arrows/WASD fly, SPACE shoot, F1 or R restart, ESC or Q quit"

// Draw paints the current frame.
func (g *Game) Draw(d Display) {
	for _, s := range g.stars {
		d.DrawPoint(s)
	}

	if g.state == StateMenu {
		g.drawMenu(d)
		return
	}

	g.drawWorld(d)
	g.drawHUD(d)

	switch g.state {
	case StateRoundOver:
		g.drawOverlay(d, "GAME OVER!")
	case StateWon:
		g.drawOverlay(d, "YOU WIN!")
	}
}

// drawWorld draws every entity of the round.
func (g *Game) drawWorld(d Display) {
	e := g.engine
	drawAll(d, e.Explosions)
	drawAll(d, e.Debris)
	drawAll(d, e.PowerUps)
	drawAll(d, e.Asteroids)
	drawAll(d, e.Bullets)
	if e.Ship != nil && object.ShouldRenderBlink(e.GraceRemaining(), PlayerBlinkFrequency) {
		e.Ship.Draw(d)
	}
}

func drawAll[T object.Drawable](r object.Renderer, items []T) {
	for _, it := range items {
		it.Draw(r)
	}
}

// drawHUD draws the in-game score.
func (g *Game) drawHUD(d Display) {
	text := "Score: " + formatScore(g.engine.Round.Score)
	d.DrawText(text, physics.Vec2{}, draw.TextStyle{Anchor: draw.AnchorTopLeft, Color: draw.ColorMagenta})
}

// drawOverlay draws the end-of-round title with restart and exit hints.
func (g *Game) drawOverlay(d Display, title string) {
	w, h := g.engine.Width(), g.engine.Height()
	y := h * overlayY
	scale := g.settings.Scale

	d.DrawText(title, physics.Vec2{X: w / 2, Y: y}, heading)
	d.DrawText("Press F1 or R to restart", physics.Vec2{X: w / 2, Y: y + overlayLine1*scale}, centered)
	d.DrawText("Press ESC or Q to exit", physics.Vec2{X: w / 2, Y: y + overlayLine2*scale}, centered)
}

// menuLabel returns the text of a title screen entry.
func (g *Game) menuLabel(item menuItem) string {
	switch item {
	case itemPlay:
		return "Play!"
	case itemToggleMode:
		return fmt.Sprintf("Toggle hard/easy mode [%s]", g.stats.Mode())
	case itemScoreTable:
		return "Score Table"
	case itemChangeShip:
		return "Change spaceship"
	default:
		return "Quit game"
	}
}

// drawMenu draws the title screen: the drifting asteroids above the divider,
// the ship that will be launched below it and the menu entries.
func (g *Game) drawMenu(d Display) {
	e := g.engine
	w, h := e.Width(), e.Height()

	e.PreviewShip().Draw(d)
	for _, a := range e.Asteroids {
		a.Draw(d)
	}

	divider := h/2 + config.MenuDividerOffset
	d.DrawLine(physics.Vec2{Y: divider}, physics.Vec2{X: w, Y: divider})

	titleY := h * menuTitleY
	spacing := h * menuSpacing
	d.DrawText("Destroyds", physics.Vec2{X: w / 2, Y: titleY}, heading)

	startY := titleY + 2*spacing
	for item := range menuItemCount {
		at := physics.Vec2{X: w / 2, Y: startY + float64(item)*spacing}
		g.menuRects[item] = d.DrawText(g.menuLabel(item), at, centered)
	}

	d.DrawText(controlsHelp, physics.Vec2{X: w / 2, Y: h * controlsY}, hint)

	if g.showScores {
		g.drawScoreTable(d)
	}
}

// drawScoreTable draws the top scores of the run in a box on the left.
func (g *Game) drawScoreTable(d Display) {
	w, h := g.engine.Width(), g.engine.Height()
	scale := g.settings.Scale
	x, y := w*scoreTableX, h*scoreTableY

	d.DrawText("Score Table", physics.Vec2{X: x, Y: y}, draw.TextStyle{Anchor: draw.AnchorTopLeft, Color: draw.ColorBold})

	top := y + scoreGridTop*scale
	box := physics.Rect{X: x - 10, Y: top, W: w * scoreGridW, H: scoreGridH * scale}
	corners := []physics.Vec2{
		{X: box.X, Y: box.Y},
		{X: box.X + box.W, Y: box.Y},
		{X: box.X + box.W, Y: box.Y + box.H},
		{X: box.X, Y: box.Y + box.H},
	}
	for i := range corners {
		d.DrawLine(corners[i], corners[(i+1)%len(corners)])
	}

	ranked := g.stats.Scores.Ranked()
	for i := range config.TopScoreSize {
		label := strconv.Itoa(i + 1)
		if i < len(ranked) {
			label = fmt.Sprintf("%d%10s", i+1, formatScore(ranked[i]))
		}
		style := draw.TextStyle{Anchor: draw.AnchorTopLeft}
		if i == 0 {
			style.Color = draw.ColorGreen
		}
		at := physics.Vec2{X: x, Y: y + (scoreRowOffset+float64(i)*scoreRowStep)*scale}
		d.DrawText(label, at, style)
	}
}

// formatScore prints whole scores without a fraction and easy-mode halves
// with one.
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
