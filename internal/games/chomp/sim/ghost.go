package sim

import (
	"math"
	"math/rand"
)

// GhostCount is the fixed number of pursuers.
const GhostCount = 4

// Personality selects a ghost's targeting strategy. The four behaviors are
// a closed set; dispatch is by enum, never by name string.
type Personality int

const (
	// Chaser targets the player's tile directly.
	Chaser Personality = iota
	// Ambusher targets four tiles ahead of the player's facing.
	Ambusher
	// Flanker reflects a point two tiles ahead of the player through the
	// Chaser's position, producing pincer movements.
	Flanker
	// Opportunist chases from afar but retreats to its corner when close.
	Opportunist
)

func (p Personality) String() string {
	switch p {
	case Chaser:
		return "chaser"
	case Ambusher:
		return "ambusher"
	case Flanker:
		return "flanker"
	case Opportunist:
		return "opportunist"
	default:
		return "unknown"
	}
}

// GhostMode is a ghost's state machine position.
type GhostMode int

const (
	ModeInHouse GhostMode = iota
	ModeScatter
	ModeChase
	ModeFrightened
	ModeEaten
)

func (m GhostMode) String() string {
	switch m {
	case ModeInHouse:
		return "in_house"
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Hostile reports whether colliding with the ghost in this mode costs the
// player a life.
func (m GhostMode) Hostile() bool {
	return m == ModeScatter || m == ModeChase
}

// houseBobSpeed is the vertical drift speed of ghosts idling in the house.
const houseBobSpeed = 1.5

// centerTol is how close to a tile center a ghost must be before it may
// pick a new direction. Decisions away from center would cause mid-cell
// direction flips.
const centerTol = 0.1

// Ghost is one pursuer agent.
type Ghost struct {
	Personality   Personality
	X, Y          float64
	Dir           Direction
	Mode          GhostMode
	ScatterTarget Point

	// EatenFor accumulates time spent returning home. If it exceeds the
	// failsafe bound the ghost is teleported home directly.
	EatenFor float64
}

// Frightened reports whether the ghost is currently edible.
func (g *Ghost) Frightened() bool { return g.Mode == ModeFrightened }

// Tile returns the tile the ghost currently occupies, by rounding.
func (g *Ghost) Tile() Point {
	return Point{X: int(math.Round(g.X)), Y: int(math.Round(g.Y))}
}

// SetFrightened flips an active ghost into the frightened state, reversing
// its direction. In-house and eaten ghosts are unaffected by pellets.
func (g *Ghost) SetFrightened() {
	if g.Mode == ModeEaten || g.Mode == ModeInHouse {
		return
	}
	g.Mode = ModeFrightened
	g.Dir = g.Dir.Reverse()
}

// bobInHouse drifts the ghost vertically between the house bounds.
func (g *Ghost) bobInHouse(layout Layout, dt float64) {
	_, dy := g.Dir.Vector()
	g.Y += float64(dy) * houseBobSpeed * dt
	if g.Y < layout.HouseTopY {
		g.Dir = DirDown
	} else if g.Y > layout.HouseBottomY {
		g.Dir = DirUp
	}
}

// target computes the tile this ghost is steering toward. Eaten overrides
// everything (head for the door); scatter overrides the personality.
func (g *Ghost) target(w *World) (float64, float64) {
	if g.Mode == ModeEaten {
		return float64(w.layout.Door.X), float64(w.layout.Door.Y)
	}
	if g.Mode == ModeScatter {
		return float64(g.ScatterTarget.X), float64(g.ScatterTarget.Y)
	}

	px, py := w.player.X, w.player.Y
	pdx, pdy := w.player.Dir.Vector()

	switch g.Personality {
	case Chaser:
		return px, py
	case Ambusher:
		return px + float64(pdx)*4, py + float64(pdy)*4
	case Flanker:
		// Reflect the 2-ahead point through the Chaser's position.
		ax := px + float64(pdx)*2
		ay := py + float64(pdy)*2
		chaser := &w.ghosts[Chaser]
		return ax + (ax - chaser.X), ay + (ay - chaser.Y)
	default: // Opportunist
		dist := math.Hypot(px-g.X, py-g.Y)
		if dist > 8 {
			return px, py
		}
		return float64(g.ScatterTarget.X), float64(g.ScatterTarget.Y)
	}
}

// decide picks a new direction at a tile center. Candidates are the
// passable cardinal neighbors in the fixed order up, left, down, right;
// the reversal of the current direction is excluded unless it is the only
// option, and the exclusion is waived entirely while frightened or eaten.
func (g *Ghost) decide(w *World, tileX, tileY int, rng *rand.Rand) {
	reverse := g.Dir.Reverse()
	allowReverse := g.Mode == ModeFrightened || g.Mode == ModeEaten

	var candidates []Direction
	for _, d := range decisionOrder {
		dx, dy := d.Vector()
		if !w.maze.Passable(tileX+dx, tileY+dy, true) {
			continue
		}
		if d == reverse && !allowReverse {
			continue
		}
		candidates = append(candidates, d)
	}

	// Dead end: the reversal becomes legal.
	if len(candidates) == 0 {
		for _, d := range decisionOrder {
			dx, dy := d.Vector()
			if w.maze.Passable(tileX+dx, tileY+dy, true) {
				candidates = append(candidates, d)
			}
		}
	}
	if len(candidates) == 0 {
		return
	}

	if g.Mode == ModeFrightened {
		g.Dir = candidates[rng.Intn(len(candidates))]
		return
	}

	tx, ty := g.target(w)
	best := candidates[0]
	bestDist := math.Inf(1)
	for _, d := range candidates {
		dx, dy := d.Vector()
		nx := float64(tileX + dx)
		ny := float64(tileY + dy)
		dist := (nx-tx)*(nx-tx) + (ny-ty)*(ny-ty)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	g.Dir = best
}

// Move advances the ghost by one tick: house bobbing, the at-center
// direction decision, movement with half-step look-ahead (doors always
// passable, 2x speed while eaten), tunnel wrap, and the home-arrival and
// failsafe checks for eaten ghosts.
func (g *Ghost) Move(w *World, dt float64) {
	if g.Mode == ModeInHouse {
		g.bobInHouse(w.layout, dt)
		return
	}

	var speed float64
	switch g.Mode {
	case ModeEaten:
		speed = w.ghostSpeed * 2
	case ModeFrightened:
		speed = w.frightenedSpeed
	default:
		speed = w.ghostSpeed
	}

	if g.Mode == ModeEaten {
		g.EatenFor += dt
		if g.EatenFor > w.cfg.EatenFailsafe {
			// Geometry failed to deliver the ghost home in time.
			w.returnGhostHome(g)
			return
		}
	}

	tileX := int(math.Round(g.X))
	tileY := int(math.Round(g.Y))

	atCenter := math.Abs(g.X-float64(tileX)) < centerTol && math.Abs(g.Y-float64(tileY)) < centerTol
	if atCenter {
		g.X = float64(tileX)
		g.Y = float64(tileY)

		if g.Mode == ModeEaten && tileX == w.layout.Door.X && tileY == w.layout.Door.Y {
			w.returnGhostHome(g)
			return
		}

		g.decide(w, tileX, tileY, w.rng)
	}

	dx, dy := g.Dir.Vector()
	if dx != 0 || dy != 0 {
		newX := g.X + float64(dx)*speed*dt
		newY := g.Y + float64(dy)*speed*dt

		checkX := int(math.Round(newX + float64(dx)*wallStopOffset))
		checkY := int(math.Round(newY + float64(dy)*wallStopOffset))

		if w.maze.Passable(checkX, checkY, true) {
			g.X = newX
			g.Y = newY
		} else {
			g.X = math.Round(g.X)
			g.Y = math.Round(g.Y)
		}
	}

	// Tunnel wrap
	if g.X < 0 {
		g.X = float64(w.maze.Width()) - 1.0
	} else if g.X >= float64(w.maze.Width()) {
		g.X = 0.0
	}

	// Eaten ghosts also catch the door by proximity, so a slightly
	// off-center pass still counts as arrival.
	if g.Mode == ModeEaten {
		if math.Abs(g.X-float64(w.layout.Door.X)) < 0.5 && math.Abs(g.Y-float64(w.layout.Door.Y)) < 0.5 {
			w.returnGhostHome(g)
		}
	}
}
