package sim

import "math"

// Turn-assist tolerances. Along-track is generous so a slightly early or
// late keypress still turns at the corner; cross-track is tight so the
// player cannot cut through walls.
const (
	turnTolIdle  = 0.5
	turnTolAlong = 0.6
	turnTolCross = 0.3
)

// wallStopOffset is how far past a tile center an agent may travel toward
// an impassable tile before being clamped (edge-of-tile stop).
const wallStopOffset = 0.4

// Player is the player agent: continuous position in tile coordinates,
// the committed direction, and the queued direction latched from input.
type Player struct {
	X, Y   float64
	Dir    Direction
	Queued Direction
	Speed  float64 // tiles per second
}

// Steer latches a desired direction. The queued direction persists until a
// turn becomes possible, matching the arcade convention of pre-buffering a
// turn at the next corner.
func (p *Player) Steer(d Direction) {
	if d != DirNone {
		p.Queued = d
	}
}

// Move advances the player by one tick against the maze: try the queued
// turn with turn assist, advance along the committed direction with a
// half-step look-ahead, then apply tunnel wrap.
func (p *Player) Move(m *Maze, dt float64) {
	curTX := int(math.Round(p.X))
	curTY := int(math.Round(p.Y))

	if p.Queued != DirNone && p.Queued != p.Dir {
		p.tryTurn(m, curTX, curTY)
	}

	if p.Dir != DirNone {
		p.advance(m, curTX, curTY, dt)
	}

	// Tunnel wrap
	if p.X < 0 {
		p.X = float64(m.Width()) - 1.0
	} else if p.X >= float64(m.Width()) {
		p.X = 0.0
	}
}

// tryTurn tests up to two candidate turn points: the tile nearest the
// current position and the tile one step behind along the current
// direction (covers overshoot). On success it snaps the perpendicular
// coordinate to the turn point's lane and commits the queued direction.
func (p *Player) tryTurn(m *Maze, curTX, curTY int) {
	ndx, ndy := p.Queued.Vector()

	candidates := [][2]int{{curTX, curTY}}
	if p.Dir != DirNone {
		dx, dy := p.Dir.Vector()
		candidates = append(candidates, [2]int{curTX - dx, curTY - dy})
	}

	for _, c := range candidates {
		tx, ty := c[0], c[1]
		if !m.Passable(tx+ndx, ty+ndy, false) {
			continue
		}

		distX := math.Abs(p.X - float64(tx))
		distY := math.Abs(p.Y - float64(ty))

		var canTurn bool
		switch {
		case p.Dir == DirNone:
			canTurn = distX < turnTolIdle && distY < turnTolIdle
		case p.Dir.Horizontal():
			canTurn = distY < turnTolCross && distX < turnTolAlong
		default:
			canTurn = distX < turnTolCross && distY < turnTolAlong
		}
		if !canTurn {
			continue
		}

		p.Dir = p.Queued
		// Snap to the turn point's lane
		if ndx != 0 {
			p.Y = float64(ty)
		}
		if ndy != 0 {
			p.X = float64(tx)
		}
		return
	}
}

// advance moves along the committed direction, checking both the
// destination tile and a half-step look-ahead. Approaching a wall clamps
// motion at the edge of the current tile so movement feels continuous
// right up to the wall; landing inside a wall snaps back to tile center.
func (p *Player) advance(m *Maze, curTX, curTY int, dt float64) {
	dx, dy := p.Dir.Vector()
	newX := p.X + float64(dx)*p.Speed*dt
	newY := p.Y + float64(dy)*p.Speed*dt

	newTX := int(math.Round(newX))
	newTY := int(math.Round(newY))

	aheadTX := int(newX + float64(dx)*0.5)
	aheadTY := int(newY + float64(dy)*0.5)

	switch {
	case !m.Passable(newTX, newTY, false):
		// High-dt corner case: destination itself is inside a wall.
		p.X = float64(curTX)
		p.Y = float64(curTY)
	case !m.Passable(aheadTX, aheadTY, false):
		// Wall ahead: stop at the edge of the current tile.
		if dx > 0 {
			p.X = math.Min(newX, float64(newTX)+wallStopOffset)
		} else if dx < 0 {
			p.X = math.Max(newX, float64(newTX)-wallStopOffset)
		}
		if dy > 0 {
			p.Y = math.Min(newY, float64(newTY)+wallStopOffset)
		} else if dy < 0 {
			p.Y = math.Max(newY, float64(newTY)-wallStopOffset)
		}
	default:
		p.X = newX
		p.Y = newY
	}
}

// Tile returns the tile the player currently occupies, by rounding.
func (p *Player) Tile() Point {
	return Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}
