// Package sim implements the chomp maze-chase simulation core.
// It is pure and deterministic: no I/O, no goroutines, and all randomness
// flows through an injected seeded source. The platform layer owns input
// mapping and rendering; this package owns the rules.
package sim

import "fmt"

// Tile is a single maze cell kind.
type Tile uint8

const (
	TileOpen Tile = iota
	TileWall
	TileDot
	TilePowerPellet
	TileDoor // ghost house door: passable for ghosts only
)

// Point is an integer tile coordinate.
type Point struct {
	X, Y int
}

// Maze holds the tile grid for one level. The grid is mutated only by
// Consume (dot/pellet pickup) and replaced wholesale on level transition.
type Maze struct {
	width  int
	height int
	tiles  [][]Tile

	// tunnelRows marks rows where both horizontal edges are open corridor,
	// enabling wraparound. Detected from the template at parse time.
	tunnelRows map[int]bool

	dotsTotal     int
	dotsRemaining int
}

// ParseMaze builds a Maze from a template of single-character tile codes:
// '0' open, '1' wall, '2' dot, '3' power pellet, '4' ghost house door.
// Rows must be rectangular.
func ParseMaze(template []string) (*Maze, error) {
	if len(template) == 0 {
		return nil, fmt.Errorf("sim: empty maze template")
	}

	m := &Maze{
		height:     len(template),
		width:      len(template[0]),
		tunnelRows: make(map[int]bool),
	}

	m.tiles = make([][]Tile, m.height)
	for y, row := range template {
		if len(row) != m.width {
			return nil, fmt.Errorf("sim: maze row %d has width %d, want %d", y, len(row), m.width)
		}
		m.tiles[y] = make([]Tile, m.width)
		for x, ch := range row {
			var t Tile
			switch ch {
			case '0':
				t = TileOpen
			case '1':
				t = TileWall
			case '2':
				t = TileDot
			case '3':
				t = TilePowerPellet
			case '4':
				t = TileDoor
			default:
				return nil, fmt.Errorf("sim: invalid tile code %q at (%d,%d)", ch, x, y)
			}
			m.tiles[y][x] = t
			if t == TileDot || t == TilePowerPellet {
				m.dotsTotal++
			}
		}
		// A row whose edge cells are open corridor wraps around.
		if m.tiles[y][0] == TileOpen && m.tiles[y][m.width-1] == TileOpen {
			m.tunnelRows[y] = true
		}
	}

	m.dotsRemaining = m.dotsTotal
	return m, nil
}

// Width returns the grid width in tiles.
func (m *Maze) Width() int { return m.width }

// Height returns the grid height in tiles.
func (m *Maze) Height() int { return m.height }

// DotsTotal returns the number of dot and pellet tiles at level start.
func (m *Maze) DotsTotal() int { return m.dotsTotal }

// DotsRemaining returns the number of uneaten dot and pellet tiles.
// Reaching zero is the sole win trigger.
func (m *Maze) DotsRemaining() int { return m.dotsRemaining }

// IsTunnelRow reports whether row y wraps horizontally.
func (m *Maze) IsTunnelRow(y int) bool { return m.tunnelRows[y] }

// TunnelRows returns the wrapping rows in ascending order. The order is
// fixed so random selections over it stay reproducible for a given seed.
func (m *Maze) TunnelRows() []int {
	var rows []int
	for y := 0; y < m.height; y++ {
		if m.tunnelRows[y] {
			rows = append(rows, y)
		}
	}
	return rows
}

// TileAt resolves the tile at a coordinate. Out-of-range x wraps on tunnel
// rows only; every other out-of-range query resolves to Wall rather than
// erroring.
func (m *Maze) TileAt(tx, ty int) Tile {
	if ty < 0 || ty >= m.height {
		return TileWall
	}
	if tx < 0 || tx >= m.width {
		if !m.tunnelRows[ty] {
			return TileWall
		}
		tx = wrapIndex(tx, m.width)
	}
	return m.tiles[ty][tx]
}

// Passable reports whether an agent of the given kind may occupy the tile.
// The ghost house door admits ghosts only. Out-of-range x on a tunnel row
// is passable so agents can run off the edge and wrap.
func (m *Maze) Passable(tx, ty int, isGhost bool) bool {
	if ty < 0 || ty >= m.height {
		return false
	}
	if (tx < 0 || tx >= m.width) && !m.tunnelRows[ty] {
		return false
	}
	switch m.TileAt(tx, ty) {
	case TileWall:
		return false
	case TileDoor:
		return isGhost
	default:
		return true
	}
}

// Consume converts a Dot or PowerPellet tile to Open and returns the kind
// that was consumed. The second return is false when the tile held nothing
// edible. Out-of-range coordinates consume nothing.
func (m *Maze) Consume(tx, ty int) (Tile, bool) {
	if tx < 0 || tx >= m.width || ty < 0 || ty >= m.height {
		return TileOpen, false
	}
	t := m.tiles[ty][tx]
	if t != TileDot && t != TilePowerPellet {
		return TileOpen, false
	}
	m.tiles[ty][tx] = TileOpen
	m.dotsRemaining--
	return t, true
}

// Tiles returns a deep copy of the grid for read-only snapshots.
func (m *Maze) Tiles() [][]Tile {
	out := make([][]Tile, m.height)
	for y := range m.tiles {
		out[y] = make([]Tile, m.width)
		copy(out[y], m.tiles[y])
	}
	return out
}

// wrapIndex maps any integer into [0, width).
func wrapIndex(x, width int) int {
	x %= width
	if x < 0 {
		x += width
	}
	return x
}
