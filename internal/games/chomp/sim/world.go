package sim

import (
	"math"
	"math/rand"
)

// Config carries every tunable of the simulation. Speeds are in tiles per
// second, durations in seconds. Zero values are not meaningful; start from
// DefaultConfig and override.
type Config struct {
	PlayerSpeed     float64
	GhostSpeed      float64
	FrightenedSpeed float64

	ModeDuration    float64 // scatter/chase alternation period
	CollisionRadius float64
	EatenFailsafe   float64 // max seconds an eaten ghost may wander before teleporting home

	DotPoints       int
	PelletPoints    int
	GhostBasePoints int // first eaten ghost; doubles per ghost within a window

	Lives int

	// FixedCurve freezes the difficulty curve at its level-1 values, so
	// every level plays the same except for the maze rotation.
	FixedCurve bool

	// FruitEnabled controls the wandering bonus fruit.
	FruitEnabled bool
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		PlayerSpeed:     6.0,
		GhostSpeed:      4.5,
		FrightenedSpeed: 3.0,
		ModeDuration:    20.0,
		CollisionRadius: 0.7,
		EatenFailsafe:   15.0,
		DotPoints:       10,
		PelletPoints:    50,
		GhostBasePoints: 200,
		Lives:           3,
		FruitEnabled:    true,
	}
}

// World is the complete simulation state for one run. It is advanced only
// by Step and never does I/O; all randomness comes from the seeded rng so
// equal seeds and equal input sequences give equal runs.
type World struct {
	cfg Config
	rng *rand.Rand

	level   int
	score   int
	lives   int
	runOver bool

	maze   *Maze
	layout Layout
	custom bool // pinned to a user-supplied layout, skip the rotation

	player Player
	ghosts [GhostCount]Ghost
	modes  ModeController

	// Curve outputs applied for the current level.
	ghostSpeed      float64
	frightenedSpeed float64
	releaseInterval float64
	frightenedDur   float64

	released int // ghosts outside the house, the Chaser included

	fruit        Fruit
	fruitSpawned int
	dotsEaten    int
}

// NewWorld creates a run at level 1 using the built-in maze rotation.
func NewWorld(cfg Config, seed int64) *World {
	w := &World{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		lives: cfg.Lives,
	}
	w.startLevel(1)
	return w
}

// NewWorldWithLayout creates a run pinned to a single custom layout; level
// transitions replay the same maze. The layout must pass ValidateLayout.
func NewWorldWithLayout(cfg Config, seed int64, layout Layout) (*World, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		lives:  cfg.Lives,
		layout: layout,
		custom: true,
	}
	w.startLevel(1)
	return w, nil
}

// startLevel loads the maze for a level and resets all per-level state.
// The score, lives and rng stream carry over.
func (w *World) startLevel(level int) {
	w.level = level
	if !w.custom {
		w.layout = LayoutForLevel(level)
	}

	m, err := ParseMaze(w.layout.Template)
	if err != nil {
		// Built-in templates are static and validated by tests; a custom
		// layout was validated in NewWorldWithLayout.
		panic("sim: unparseable layout " + w.layout.Name + ": " + err.Error())
	}
	w.maze = m

	w.applyCurve(level)
	w.modes = NewModeController(w.cfg.ModeDuration, w.cfg.GhostBasePoints)
	w.resetAgents()

	w.dotsEaten = 0
	w.fruitSpawned = 0
	w.fruit = Fruit{}
}

// applyCurve evaluates the difficulty curve for a level and caches the
// results. With FixedCurve set, every level plays at level-1 tuning.
func (w *World) applyCurve(level int) {
	l := level
	if w.cfg.FixedCurve {
		l = 1
	}
	mult := SpeedMultiplier(l)
	w.ghostSpeed = w.cfg.GhostSpeed * mult
	w.frightenedSpeed = w.cfg.FrightenedSpeed * mult
	w.releaseInterval = ReleaseInterval(l)
	w.frightenedDur = FrightenedDuration(l)
}

// resetAgents places all agents at their spawns. The Chaser starts outside
// the house and active; the other three bob inside until released.
func (w *World) resetAgents() {
	w.player = Player{
		X:     float64(w.layout.PlayerSpawn.X),
		Y:     float64(w.layout.PlayerSpawn.Y),
		Dir:   DirNone,
		Speed: w.cfg.PlayerSpeed,
	}

	for p := Personality(0); p < GhostCount; p++ {
		spawn := w.layout.GhostSpawns[p]
		w.ghosts[p] = Ghost{
			Personality:   p,
			X:             float64(spawn.X),
			Y:             float64(spawn.Y),
			ScatterTarget: w.layout.ScatterTarget(p, w.maze.Width(), w.maze.Height()),
		}
		if p == Chaser {
			w.ghosts[p].Dir = DirLeft
			w.ghosts[p].Mode = w.phaseMode()
		} else {
			w.ghosts[p].Dir = DirUp
			w.ghosts[p].Mode = ModeInHouse
		}
	}
	w.released = 1
}

// phaseMode maps the global scatter/chase phase to a ghost mode.
func (w *World) phaseMode() GhostMode {
	if w.modes.Chase() {
		return ModeChase
	}
	return ModeScatter
}

// Step advances the simulation by dt seconds. The steer argument is the
// direction sampled from input for this tick (DirNone when no key is held).
/// Order matters: timers, then the player, then pickups with the win
// short-circuit, then ghosts, then collisions.
func (w *World) Step(steer Direction, dt float64) {
	if w.runOver {
		return
	}

	w.advanceTimers(dt)

	w.player.Steer(steer)
	w.player.Move(w.maze, dt)

	if w.resolvePickups() {
		// Board cleared; ghosts do not move on the winning tick.
		w.startLevel(w.level + 1)
		return
	}

	w.stepFruit(dt)

	for i := range w.ghosts {
		w.ghosts[i].Move(w, dt)
	}

	w.resolveCollisions()
}

// advanceTimers runs the mode controller, syncs active ghosts to the
// global phase, and releases house ghosts on schedule.
func (w *World) advanceTimers(dt float64) {
	frightenedExpired := w.modes.Advance(dt)

	phase := w.phaseMode()
	for i := range w.ghosts {
		g := &w.ghosts[i]
		if frightenedExpired && g.Mode == ModeFrightened {
			g.Mode = phase
		}
		if g.Mode.Hostile() && g.Mode != phase {
			g.Mode = phase
		}
	}

	// The release clock runs even with an empty house, so a ghost eaten
	// and sent home slots into the ongoing schedule instead of waiting a
	// full interval from the moment it returns.
	if w.modes.AdvanceRelease(dt, w.releaseInterval) {
		w.modes.ReleaseDone()
		if w.released < GhostCount {
			w.releaseNext()
		}
	}
}

// releaseNext moves the lowest-numbered in-house ghost to the exit tile,
// facing away from the door.
func (w *World) releaseNext() {
	for p := Personality(0); p < GhostCount; p++ {
		g := &w.ghosts[p]
		if g.Mode != ModeInHouse {
			continue
		}
		g.X = float64(w.layout.ExitPoint.X)
		g.Y = float64(w.layout.ExitPoint.Y)
		g.Dir = DirLeft
		g.Mode = w.phaseMode()
		w.released++
		return
	}
}

// resolvePickups consumes whatever edible sits on the player's tile and
// reports whether the maze has been cleared.
func (w *World) resolvePickups() bool {
	tile := w.player.Tile()
	t, ok := w.maze.Consume(tile.X, tile.Y)
	if ok {
		w.dotsEaten++
		switch t {
		case TileDot:
			w.score += w.cfg.DotPoints
		case TilePowerPellet:
			w.score += w.cfg.PelletPoints
			if w.frightenedDur > 0 {
				w.modes.TriggerFrightened(w.frightenedDur)
				for i := range w.ghosts {
					w.ghosts[i].SetFrightened()
				}
			}
		}
	}
	return w.maze.DotsRemaining() == 0
}

// stepFruit handles fruit spawning, wandering and collection. Two fruits
// per level, appearing after 35% and 85% of the dots are gone.
func (w *World) stepFruit(dt float64) {
	if !w.cfg.FruitEnabled {
		return
	}

	if !w.fruit.Active && w.maze.DotsTotal() > 0 {
		ratio := float64(w.dotsEaten) / float64(w.maze.DotsTotal())
		if (w.fruitSpawned == 0 && ratio >= 0.35) || (w.fruitSpawned == 1 && ratio >= 0.85) {
			w.fruit = spawnFruit(w.maze, FruitForLevel(w.level), w.rng)
			if w.fruit.Active {
				w.fruitSpawned++
			}
		}
	}

	if !w.fruit.Active {
		return
	}
	w.fruit.Move(w.maze, w.cfg.PlayerSpeed*fruitSpeedScale, dt, w.rng)

	if math.Hypot(w.player.X-w.fruit.X, w.player.Y-w.fruit.Y) < fruitCollectRadius {
		w.score += w.fruit.Kind.Points()
		w.fruit.Active = false
	}
}

// resolveCollisions checks player-ghost contact. A frightened ghost is
// eaten for escalating points; a hostile ghost costs a life. At most one
// life is lost per tick.
func (w *World) resolveCollisions() {
	for i := range w.ghosts {
		g := &w.ghosts[i]
		if math.Hypot(w.player.X-g.X, w.player.Y-g.Y) >= w.cfg.CollisionRadius {
			continue
		}
		switch {
		case g.Mode == ModeFrightened:
			w.score += w.modes.EatGhost()
			g.Mode = ModeEaten
			g.EatenFor = 0
		case g.Mode.Hostile():
			w.loseLife()
			return
		}
	}
}

// loseLife decrements lives and either ends the run or respawns the agents
// in place. The maze, score and level survive a respawn.
func (w *World) loseLife() {
	w.lives--
	if w.lives <= 0 {
		w.lives = 0
		w.runOver = true
		return
	}
	w.modes.ResetTimers()
	w.resetAgents()
	w.fruit.Active = false
}

// returnGhostHome puts an eaten ghost back in the house, where the release
// schedule will send it out again.
func (w *World) returnGhostHome(g *Ghost) {
	g.Mode = ModeInHouse
	g.X = float64(w.layout.Door.X)
	g.Y = w.layout.HouseTopY + 0.5
	g.Dir = DirDown
	g.EatenFor = 0
	if w.released > 0 {
		w.released--
	}
}

// Score returns the accumulated score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// Level returns the current level, starting at 1.
func (w *World) Level() int { return w.level }

// Over reports whether the run has ended.
func (w *World) Over() bool { return w.runOver }

// Maze exposes the current maze for rendering.
func (w *World) Maze() *Maze { return w.maze }
