package pipemania

import (
	"fmt"

	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

const (
	hudHeight    = 3
	statusHeight = 2
	panelWidth   = 16
	panelGap     = 2
	cardHeight   = 3
	cardCount    = 2
)

// layoutSize returns the screen size needed for a board.
func layoutSize(cols, rows, inventory int) (int, int) {
	boardW := cols*cellWidth + 2
	boardH := rows + 2
	panelH := inventory + 2 + cardCount*cardHeight
	return boardW + panelGap + panelWidth, hudHeight + max(boardH, panelH) + statusHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil || g.failed {
		g.renderFailed(dst)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.session.Snapshot()
	totalW, totalH := layoutSize(snap.Cols, snap.Rows, len(snap.Inventory))
	originX := (g.screenW - totalW) / 2
	originY := (g.screenH - totalH) / 2

	g.renderHUD(dst, originY, snap)

	boardRect := core.NewRect(originX, originY+hudHeight, snap.Cols*cellWidth+2, snap.Rows+2)
	g.renderBoard(dst, boardRect, snap)

	panelX := boardRect.Right() + panelGap
	g.renderPanel(dst, panelX, boardRect.Y, snap)

	g.renderStatus(dst, originY+totalH-1)

	if g.paused {
		drawOverlay(dst, boardRect, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the title and board info.
func (g *Game) renderHUD(dst *core.Screen, y int, snap pipes.Snapshot) {
	dst.DrawTextCentered(y, "P I P E M A N I A", core.ColorWater)

	info := fmt.Sprintf("%s  %dx%d", g.Title(), snap.Cols, snap.Rows)
	if g.journal > 0 {
		info += fmt.Sprintf("  journal #%d", g.journal)
	}
	dst.DrawTextCentered(y+1, info, core.ColorMuted)
}

// renderBoard draws the framed grid.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, snap pipes.Snapshot) {
	dst.DrawBox(r, core.ColorGrid)

	for y := range snap.Rows {
		for x := range snap.Cols {
			c := pipes.C(x, y)
			runes, color := cellRunes(snap.Cells[y][x], snap.Flow[y][x], false)
			px := r.X + 1 + x*cellWidth
			py := r.Y + 1 + y

			for i, ch := range runes {
				dst.SetColored(px+i, py, ch, color)
			}
			if snap.Cursor == c {
				dst.SetColored(px, py, cursorLeft, core.ColorCursor)
				dst.SetColored(px+cellWidth-1, py, cursorRight, core.ColorCursor)
			}
		}
	}
}

// renderPanel draws the inventory strip and the HUD cards.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap pipes.Snapshot) {
	invRect := core.NewRect(x, y, panelWidth, len(snap.Inventory)+2)
	dst.DrawBox(invRect, core.ColorGrid)
	dst.DrawTextColored(x+2, y, " NEXT ", core.ColorMuted)

	for i, k := range snap.Inventory {
		row := y + 1 + i
		color := core.ColorPipe
		marker := ' '
		if i == 0 {
			color = core.ColorActive
			marker = activeMarker
		}
		dst.SetColored(x+1, row, marker, color)
		dst.SetColored(x+3, row, Glyph(k, false), color)
		dst.DrawTextColored(x+5, row, k.String(), color)
	}

	cardY := invRect.Bottom()
	g.drawCard(dst, core.NewRect(x, cardY, panelWidth, cardHeight), "FLOW",
		fmt.Sprintf("%d/%d", snap.Reached, snap.Cols*snap.Rows))
	g.drawCard(dst, core.NewRect(x, cardY+cardHeight, panelWidth, cardHeight), "SEED",
		fmt.Sprintf("%d", snap.Seed%1_000_000))
}

// drawCard draws a small labelled box. Cards are informational only.
func (g *Game) drawCard(dst *core.Screen, r core.Rect, label, value string) {
	dst.DrawBox(r, core.ColorGrid)
	dst.DrawTextColored(r.X+2, r.Y, " "+label+" ", core.ColorMuted)
	dst.DrawTextColored(r.X+2, r.Y+1, value, core.ColorDefault)
}

// renderStatus draws the last command outcome.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	if g.status == "" {
		return
	}
	color := core.ColorMuted
	if g.alert {
		color = core.ColorAlert
	}
	dst.DrawTextCentered(y, g.status, color)
}

// renderFailed shows why the board could not be set up.
func (g *Game) renderFailed(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "BOARD SETUP FAILED", core.ColorAlert)
	dst.DrawTextCentered(y, g.status, core.ColorDefault)
	dst.DrawTextCentered(y+2, "Press Esc to go back", core.ColorMuted)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorMuted)
}

// drawOverlay draws a boxed message centred on r.
func drawOverlay(dst *core.Screen, r core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	w := maxLen + 4
	h := len(lines) + 2
	cx, cy := r.Center()
	box := core.NewRect(cx-w/2, cy-h/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorCursor)
	for i, line := range lines {
		dst.DrawTextColored(box.X+2, box.Y+1+i, line, core.ColorDefault)
	}
}
