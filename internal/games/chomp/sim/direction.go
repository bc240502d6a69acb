package sim

// Direction is a discrete movement direction on the tile grid.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirLeft
	DirDown
	DirRight
)

// decisionOrder is the fixed enumeration order used whenever candidate
// directions are ranked. Ties in target distance resolve to the earliest
// entry, so the order is behaviorally significant and must not change.
var decisionOrder = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Vector returns the unit tile offset for the direction.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Reverse returns the opposite direction. DirNone reverses to itself.
func (d Direction) Reverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Horizontal reports whether the direction moves along the x axis.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
