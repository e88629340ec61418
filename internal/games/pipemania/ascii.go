package pipemania

import (
	"fmt"
	"strings"

	"github.com/FelipeeMaia/pipemania/internal/core"
	"github.com/FelipeeMaia/pipemania/internal/pipes"
)

const (
	cellWidth    = 3 // Terminal columns per board cell
	emptyRune    = '·'
	blockedRune  = '▓'
	starterRune  = '▶'
	dryLinkRune  = '─'
	wetLinkRune  = '━'
	cursorLeft   = '['
	cursorRight  = ']'
	activeMarker = '▸'
)

var dryGlyphs = map[pipes.Kind]rune{
	pipes.Horizontal: '─',
	pipes.Vertical:   '│',
	pipes.Cross:      '┼',
	pipes.CurveNE:    '└',
	pipes.CurveES:    '┌',
	pipes.CurveSW:    '┐',
	pipes.CurveWN:    '┘',
}

var wetGlyphs = map[pipes.Kind]rune{
	pipes.Horizontal: '━',
	pipes.Vertical:   '┃',
	pipes.Cross:      '╋',
	pipes.CurveNE:    '┗',
	pipes.CurveES:    '┏',
	pipes.CurveSW:    '┓',
	pipes.CurveWN:    '┛',
}

// Glyph returns the rune drawn for a pipe kind.
func Glyph(k pipes.Kind, wet bool) rune {
	if k == pipes.Starter {
		return starterRune
	}
	if wet {
		if r, ok := wetGlyphs[k]; ok {
			return r
		}
	}
	if r, ok := dryGlyphs[k]; ok {
		return r
	}
	return emptyRune
}

// cellRunes returns the three runes and colour of one board cell.
// East and west connectors are extended into the side columns so
// neighbouring pipes join up; the cursor replaces the side columns.
func cellRunes(cell pipes.Cell, wet, cursor bool) ([cellWidth]rune, core.Color) {
	out := [cellWidth]rune{' ', emptyRune, ' '}
	color := core.ColorMuted

	switch {
	case cell.Pipe == pipes.Starter:
		out[1] = starterRune
		out[2] = wetLinkRune
		color = core.ColorStarter
	case cell.Blocked():
		out[1] = blockedRune
		color = core.ColorBlocked
	case cell.Pipe != pipes.None:
		link := dryLinkRune
		color = core.ColorPipe
		if wet {
			link = wetLinkRune
			color = core.ColorWater
		}
		out[1] = Glyph(cell.Pipe, wet)
		if cell.Pipe.Opens(pipes.West) {
			out[0] = link
		}
		if cell.Pipe.Opens(pipes.East) {
			out[2] = link
		}
	}

	if cursor {
		out[0] = cursorLeft
		out[2] = cursorRight
	}
	return out, color
}

// BoardRows renders the board without a frame, one string per row.
func BoardRows(s pipes.Snapshot, showCursor bool) []string {
	rows := make([]string, s.Rows)
	for y := range s.Rows {
		var sb strings.Builder
		for x := range s.Cols {
			runes, _ := cellRunes(s.Cells[y][x], s.Flow[y][x], showCursor && s.Cursor == pipes.C(x, y))
			for _, r := range runes {
				sb.WriteRune(r)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// InventoryLine renders the queue, active piece first.
func InventoryLine(items []pipes.Kind) string {
	if len(items) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(items))
	for i, k := range items {
		parts[i] = string(Glyph(k, false))
	}
	return strings.Join(parts, " ")
}

// RenderASCII renders a snapshot as plain text: the framed board with
// water drawn in heavy lines, the inventory and the flow count.
// Used by replay, screenshots and tests.
func RenderASCII(s pipes.Snapshot) string {
	var sb strings.Builder
	width := s.Cols * cellWidth

	sb.WriteString("┌" + strings.Repeat("─", width) + "┐\n")
	for _, row := range BoardRows(s, false) {
		sb.WriteString("│" + row + "│\n")
	}
	sb.WriteString("└" + strings.Repeat("─", width) + "┘\n")

	fmt.Fprintf(&sb, "next: %s\n", InventoryLine(s.Inventory))
	fmt.Fprintf(&sb, "flow: %d cells  seed: %d\n", s.Reached, s.Seed)
	return sb.String()
}
