package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth  = 2  // Screen columns per field cell
	panelWidth = 10 // Hold/next box width: four cells plus borders
	panelGap   = 1
	hudHeight  = 1
)

var (
	blockCell = []rune("██")
	ghostCell = []rune("░░")
	emptyCell = []rune(" ·")
)

// layoutSize returns the minimum screen size for a configuration.
func layoutSize(cfg config.BlocksConfig) (w, h int) {
	fieldW := cfg.Field.Width*cellWidth + 2
	w = panelWidth + panelGap + fieldW + panelGap + panelWidth
	h = hudHeight + cfg.Field.Visible + 2
	return w, h
}

// clearNames labels multi-row clears in the HUD.
var clearNames = [...]string{"", "SINGLE", "DOUBLE", "TRIPLE", "QUAD"}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.engine.Snapshot()

	fieldW := snap.Width*cellWidth + 2
	fieldH := snap.Visible + 2
	totalW, _ := layoutSize(g.cfg)

	left := (g.screenW - totalW) / 2
	field := core.NewRect(left+panelWidth+panelGap, hudHeight, fieldW, fieldH)
	hold := core.NewRect(left, hudHeight, panelWidth, 4)
	next := core.NewRect(field.Right()+panelGap, hudHeight, panelWidth, core.Max(4, len(snap.Next)*3+1))

	g.renderHUD(dst, snap, field)
	g.renderField(dst, snap, field)
	g.renderHold(dst, snap, hold)
	g.renderStats(dst, snap, core.NewRect(left, hold.Bottom()+1, panelWidth, 8))
	g.renderNext(dst, snap, next)

	switch snap.State {
	case StatePaused:
		g.renderOverlay(dst, field, "PAUSED", "P to resume")
	case StateGameOver:
		g.renderOverlay(dst, field, "GAME OVER", "R restart  Q quit")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := layoutSize(g.cfg)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
}

// renderHUD draws the title line above the field.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, field core.Rect) {
	title := "BLOCKS"
	dst.DrawTextColor(field.X+(field.W-len(title))/2, 0, title, core.ColorBrightWhite)

	if snap.LastClear > 0 && snap.LastClear < len(clearNames) {
		label := clearNames[snap.LastClear]
		dst.DrawTextColor(field.Right()-len(label), 0, label, core.ColorBrightYellow)
	}
}

// drawCell draws one field cell (two screen columns) at screen position (x, y).
func drawCell(dst *core.Screen, x, y int, glyph []rune, c core.Color) {
	dst.SetCell(x, y, glyph[0], c)
	dst.SetCell(x+1, y, glyph[1], c)
}

// renderField draws the visible rows, the ghost and the active piece.
func (g *Game) renderField(dst *core.Screen, snap Snapshot, field core.Rect) {
	dst.DrawBox(field)
	inner := field.Inner()
	hidden := snap.HiddenRows()

	// toScreen maps a field cell to screen coordinates; ok is false for hidden rows.
	toScreen := func(x, y int) (sx, sy int, ok bool) {
		if y < hidden || y >= snap.Height {
			return 0, 0, false
		}
		return inner.X + x*cellWidth, inner.Y + y - hidden, true
	}

	for y := hidden; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			sx, sy, _ := toScreen(x, y)
			if k := snap.Grid[y][x]; k.Valid() {
				drawCell(dst, sx, sy, blockCell, g.colors[k])
			} else {
				drawCell(dst, sx, sy, emptyCell, core.ColorGray)
			}
		}
	}

	if snap.State == StateGameOver {
		return
	}

	snap.Ghost.Cells(func(x, y int) {
		if sx, sy, ok := toScreen(x, y); ok {
			drawCell(dst, sx, sy, ghostCell, g.colors[snap.Ghost.Kind])
		}
	})
	snap.Active.Cells(func(x, y int) {
		if sx, sy, ok := toScreen(x, y); ok {
			drawCell(dst, sx, sy, blockCell, g.colors[snap.Active.Kind])
		}
	})
}

// drawPreview draws a kind's canonical shape trimmed to its occupied rows,
// centered in a four-cell wide area with its top at (x, y).
func (g *Game) drawPreview(dst *core.Screen, x, y int, k Kind, c core.Color) {
	shape := ShapeOf(k)
	minX, maxX, minY := shape.Size(), -1, shape.Size()
	for sy := 0; sy < shape.Size(); sy++ {
		for sx := 0; sx < shape.Size(); sx++ {
			if shape.Filled(sx, sy) {
				minX = core.Min(minX, sx)
				maxX = core.Max(maxX, sx)
				minY = core.Min(minY, sy)
			}
		}
	}

	offset := (4 - (maxX - minX + 1)) * cellWidth / 2
	for sy := minY; sy < shape.Size(); sy++ {
		for sx := minX; sx <= maxX; sx++ {
			if shape.Filled(sx, sy) {
				drawCell(dst, x+offset+(sx-minX)*cellWidth, y+sy-minY, blockCell, c)
			}
		}
	}
}

// renderHold draws the hold box. The held piece is grayed out while hold is spent.
func (g *Game) renderHold(dst *core.Screen, snap Snapshot, box core.Rect) {
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y, "HOLD")
	if !snap.Hold.Valid() {
		return
	}
	c := g.colors[snap.Hold]
	if !snap.CanHold {
		c = core.ColorGray
	}
	g.drawPreview(dst, box.X+1, box.Y+1, snap.Hold, c)
}

// renderNext draws the upcoming kinds.
func (g *Game) renderNext(dst *core.Screen, snap Snapshot, box core.Rect) {
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y, "NEXT")
	for i, k := range snap.Next {
		g.drawPreview(dst, box.X+1, box.Y+1+i*3, k, g.colors[k])
	}
}

// renderStats draws score, level and lines under the hold box.
func (g *Game) renderStats(dst *core.Screen, snap Snapshot, area core.Rect) {
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
	}
	for i, r := range rows {
		y := area.Y + i*2
		dst.DrawTextColor(area.X, y, r.label, core.ColorGray)
		dst.DrawText(area.X, y+1, fmt.Sprintf("%d", r.value))
	}
}

// renderOverlay draws a centered two-line message box over the field.
func (g *Game) renderOverlay(dst *core.Screen, field core.Rect, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	w = core.Min(w, field.W)
	box := core.NewRect(field.X+(field.W-w)/2, field.Y+field.H/2-2, w, 4)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColor(box.X+(box.W-len(line1))/2, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawText(box.X+(box.W-len(line2))/2, box.Y+2, line2)
}
