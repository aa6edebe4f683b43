package gridagent

import (
	"fmt"
	"time"

	"github.com/vovakirdan/grid-agent/internal/core"
	"github.com/vovakirdan/grid-agent/internal/games/gridagent/engine"
)

// Layout: one HUD row above the maze, two terminal columns per cell.
const (
	cellWidth = 2
	hudHeight = 1

	MinWidth  = engine.Cols * cellWidth
	MinHeight = engine.Rows + hudHeight
)

// Glyphs.
const (
	wallGlyph    = '█'
	pelletGlyph  = '·'
	anomalyOn    = '◆'
	anomalyOff   = '◇'
	playerOpen   = '●'
	playerClosed = '○'
)

// Animation periods.
const (
	anomalyBlink = 300 * time.Millisecond
	playerChomp  = 150 * time.Millisecond
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	originX := (dst.Width() - MinWidth) / 2
	originY := hudHeight

	g.renderHUD(dst, originX)
	renderMaze(dst, snap, originX, originY)

	switch ov := g.display.Overlay(); {
	case g.paused:
		renderOverlay(dst, originX, originY, "PAUSED", "Press P to resume")
	case ov.Visible:
		renderOverlay(dst, originX, originY, ov.Title, ov.Message)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorBrightRed)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", MinWidth, MinHeight, g.screenW, g.screenH), core.ColorGray)
}

// renderHUD draws score, level and the anomaly counter on the top row.
func (g *Game) renderHUD(dst *core.Screen, x int) {
	hud := g.display.HUD()

	x = dst.DrawTextColored(x, 0, "Score ", core.ColorGray)
	x = dst.DrawTextColored(x, 0, fmt.Sprintf("%-7d", hud.Score), core.ColorBrightWhite)
	x = dst.DrawTextColored(x, 0, "Level ", core.ColorGray)
	x = dst.DrawTextColored(x, 0, fmt.Sprintf("%-4d", hud.Level), core.ColorBrightWhite)
	x = dst.DrawTextColored(x, 0, "Anomalies ", core.ColorGray)

	counter := core.ColorBrightWhite
	if g.display.Pulsing() {
		counter = core.ColorBrightMagenta
	}
	dst.DrawTextColored(x, 0, fmt.Sprintf("%d", hud.AnomaliesCollected), counter)

	if g.demo {
		tag := "DEMO"
		dst.DrawTextColored(dst.Width()-len(tag)-1, 0, tag, core.ColorYellow)
	}
}

// renderMaze draws walls, pellets, anomalies and the player.
func renderMaze(dst *core.Screen, snap engine.Snapshot, originX, originY int) {
	cell := func(p engine.Point, r rune, c core.Color) {
		x := originX + p.X*cellWidth
		dst.SetColored(x, originY+p.Y, r, c)
		if r == wallGlyph {
			dst.SetColored(x+1, originY+p.Y, r, c)
		}
	}

	for y := range snap.Grid.Height() {
		for x := range snap.Grid.Width() {
			if snap.Grid.At(x, y) == engine.CellWall {
				cell(engine.P(x, y), wallGlyph, core.ColorCyan)
			}
		}
	}

	for _, p := range snap.Pellets {
		cell(p.Pos, pelletGlyph, core.ColorYellow)
	}

	glyph := anomalyOn
	if (snap.Elapsed/anomalyBlink)%2 == 1 {
		glyph = anomalyOff
	}
	for _, a := range snap.Anomalies {
		cell(a.Pos, glyph, a.Color)
	}

	player := playerOpen
	if snap.Player.Dir != engine.DirNone && (snap.Elapsed/playerChomp)%2 == 1 {
		player = playerClosed
	}
	cell(snap.Player.Pos, player, core.ColorBrightGreen)
}

// renderOverlay draws a message box centered on the maze.
func renderOverlay(dst *core.Screen, originX, originY int, title, message string) {
	boxW := max(len([]rune(title)), len([]rune(message))) + 4
	boxH := 5
	box := core.CenteredRect(MinWidth, engine.Rows, boxW, boxH)
	box.X += originX
	box.Y += originY

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightCyan)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+(boxW-len([]rune(message)))/2, box.Y+3, message, core.ColorWhite)
}
