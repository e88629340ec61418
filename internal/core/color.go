package core

// Color is a semantic foreground colour for a screen cell.
// The TUI layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorPipe          // Laid pipe without water
	ColorWater         // Pipe carrying water
	ColorStarter       // The starter pipe
	ColorBlocked       // Blocked cell
	ColorCursor        // Selection cursor brackets
	ColorGrid          // Grid lines and frames
	ColorActive        // Active inventory piece
	ColorMuted         // Decorative text, hints
	ColorAlert         // Rejected/immutable flash
)

// String returns the colour name, used in screenshots and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorPipe:
		return "pipe"
	case ColorWater:
		return "water"
	case ColorStarter:
		return "starter"
	case ColorBlocked:
		return "blocked"
	case ColorCursor:
		return "cursor"
	case ColorGrid:
		return "grid"
	case ColorActive:
		return "active"
	case ColorMuted:
		return "muted"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
