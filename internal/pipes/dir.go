// Package pipes holds the pipe puzzle rules: grid model, inventory, flow engine
// and the session that owns them. It is UI-agnostic and deterministic for a given seed.
package pipes

// Dir is a compass direction. Each value is a single bit so sets of
// directions fit in a Mask.
type Dir uint8

const (
	North Dir = 1 << iota
	East
	South
	West
)

// Dirs lists the four directions in clockwise order.
var Dirs = [4]Dir{North, East, South, West}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "?"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// North decreases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction facing back.
func (d Dir) Opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Mask is a set of directions with an open connector.
type Mask uint8

// MaskOf builds a mask from the given directions.
func MaskOf(dirs ...Dir) Mask {
	var m Mask
	for _, d := range dirs {
		m |= Mask(d)
	}
	return m
}

// Has reports whether d is in the set.
func (m Mask) Has(d Dir) bool {
	return m&Mask(d) != 0
}

// Dirs returns the directions in the set, clockwise from North.
func (m Mask) Dirs() []Dir {
	dirs := make([]Dir, 0, 4)
	for _, d := range Dirs {
		if m.Has(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Count returns the number of open directions.
func (m Mask) Count() int {
	n := 0
	for _, d := range Dirs {
		if m.Has(d) {
			n++
		}
	}
	return n
}

// String renders the set as direction letters, e.g. "NE".
func (m Mask) String() string {
	s := ""
	for _, d := range m.Dirs() {
		s += d.String()
	}
	if s == "" {
		return "-"
	}
	return s
}
