package crawler

import "github.com/vovakirdan/tui-crawler/internal/core"

// Direction is one of the eight compass steps, or None.
type Direction int

const (
	None Direction = iota
	West
	East
	North
	South
	NorthWest
	NorthEast
	SouthWest
	SouthEast
)

var directionNames = [...]string{
	None:      "none",
	West:      "west",
	East:      "east",
	North:     "north",
	South:     "south",
	NorthWest: "north-west",
	NorthEast: "north-east",
	SouthWest: "south-west",
	SouthEast: "south-east",
}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// ParseKey maps a roguelike movement key to a direction. Keys are
// case-sensitive; anything else maps to None.
func ParseKey(r rune) Direction {
	switch r {
	case 'h':
		return West
	case 'l':
		return East
	case 'k':
		return North
	case 'j':
		return South
	case 'y':
		return NorthWest
	case 'u':
		return NorthEast
	case 'b':
		return SouthWest
	case 'n':
		return SouthEast
	default:
		return None
	}
}

// FromAction converts a platform action into a direction.
func FromAction(a core.Action) Direction {
	switch a {
	case core.ActionWest:
		return West
	case core.ActionEast:
		return East
	case core.ActionNorth:
		return North
	case core.ActionSouth:
		return South
	case core.ActionNorthWest:
		return NorthWest
	case core.ActionNorthEast:
		return NorthEast
	case core.ActionSouthWest:
		return SouthWest
	case core.ActionSouthEast:
		return SouthEast
	default:
		return None
	}
}

// delta returns the sign of the step on each axis: -1, 0 or +1.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case West:
		return -1, 0
	case East:
		return 1, 0
	case North:
		return 0, -1
	case South:
		return 0, 1
	case NorthWest:
		return -1, -1
	case NorthEast:
		return 1, -1
	case SouthWest:
		return -1, 1
	case SouthEast:
		return 1, 1
	default:
		return 0, 0
	}
}

// Advance returns the position one step of l.Speed cells away from pos in
// direction d. Both axes are computed from pos; decrements stop at 0 and
// increments stop where the player's far edge meets the dungeon boundary.
// A blocked or None step returns pos unchanged.
func Advance(pos Position, d Direction, l Layout) Position {
	dx, dy := d.delta()
	limit := l.PlayerMax()
	return Position{
		X: step(pos.X, dx, l.Speed, limit.X),
		Y: step(pos.Y, dy, l.Speed, limit.Y),
	}
}

func step(v uint32, sign int, speed, limit uint32) uint32 {
	switch {
	case sign < 0:
		return core.SatSub(v, speed)
	case sign > 0:
		return core.SatAddMax(v, speed, limit)
	default:
		return v
	}
}
