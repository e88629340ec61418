package pipes

import "strings"

// Kind is the type of pipe piece occupying a cell.
type Kind uint8

const (
	None       Kind = iota // No pipe
	Starter                // Water source, open East only
	Horizontal             // West|East
	Vertical               // North|South
	Cross                  // All four
	CurveNE                // North|East
	CurveES                // East|South
	CurveSW                // South|West
	CurveWN                // West|North

	kindCount
)

// connectivity is the static rule table consumed by the flow engine.
var connectivity = [kindCount]Mask{
	None:       0,
	Starter:    MaskOf(East),
	Horizontal: MaskOf(West, East),
	Vertical:   MaskOf(North, South),
	Cross:      MaskOf(North, East, South, West),
	CurveNE:    MaskOf(North, East),
	CurveES:    MaskOf(East, South),
	CurveSW:    MaskOf(South, West),
	CurveWN:    MaskOf(West, North),
}

var kindNames = [kindCount]string{
	None:       "none",
	Starter:    "starter",
	Horizontal: "horizontal",
	Vertical:   "vertical",
	Cross:      "cross",
	CurveNE:    "curve_ne",
	CurveES:    "curve_es",
	CurveSW:    "curve_sw",
	CurveWN:    "curve_wn",
}

// Placeable lists the kinds that can be drawn into the inventory.
var Placeable = []Kind{Horizontal, Vertical, Cross, CurveNE, CurveES, CurveSW, CurveWN}

// Mask returns the directions this kind has open connectors on.
func (k Kind) Mask() Mask {
	if k >= kindCount {
		return 0
	}
	return connectivity[k]
}

// Opens reports whether this kind has an open connector facing d.
func (k Kind) Opens(d Dir) bool {
	return k.Mask().Has(d)
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// String returns the kind name as used in layout files and the journal.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind name. Matching is case-insensitive and
// accepts "-" in place of "_".
func ParseKind(s string) (Kind, bool) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return None, false
}

// Connects reports whether a piece of kind a and its neighbour of kind b,
// lying in direction d from a, are mutually open towards each other.
func Connects(a Kind, d Dir, b Kind) bool {
	return a.Opens(d) && b.Opens(d.Opposite())
}
