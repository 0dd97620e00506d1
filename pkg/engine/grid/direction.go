package grid

import "strings"

// Direction represents one of the eight compass moves
type Direction int

// Direction constants, clockwise from North
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
}

// CardinalDirections returns the four orthogonal directions
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass moves
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsDiagonal returns true if the direction moves on both axes
func (d Direction) IsDiagonal() bool {
	delta := d.Delta()
	return delta.X != 0 && delta.Y != 0
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the unit offset for this direction. North is negative Y.
func (d Direction) Delta() Point {
	switch d {
	case North:
		return Point{0, -1}
	case NorthEast:
		return Point{1, -1}
	case East:
		return Point{1, 0}
	case SouthEast:
		return Point{1, 1}
	case South:
		return Point{0, 1}
	case SouthWest:
		return Point{-1, 1}
	case West:
		return Point{-1, 0}
	case NorthWest:
		return Point{-1, -1}
	default:
		return Point{0, 0}
	}
}

// ParseDirection maps a compass name or abbreviation ("n", "ne",
// "northeast", ...) to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, true
	case "ne", "northeast":
		return NorthEast, true
	case "e", "east":
		return East, true
	case "se", "southeast":
		return SouthEast, true
	case "s", "south":
		return South, true
	case "sw", "southwest":
		return SouthWest, true
	case "w", "west":
		return West, true
	case "nw", "northwest":
		return NorthWest, true
	default:
		return North, false
	}
}
