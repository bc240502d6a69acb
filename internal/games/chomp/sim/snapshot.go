package sim

// AgentSnapshot is the observable state of one moving agent.
type AgentSnapshot struct {
	X, Y float64
	Dir  Direction
}

// GhostSnapshot extends AgentSnapshot with the ghost's identity and mode.
type GhostSnapshot struct {
	AgentSnapshot
	Personality Personality
	Mode        GhostMode
}

// FruitSnapshot is the observable state of the bonus fruit, if any.
type FruitSnapshot struct {
	Active bool
	Kind   FruitKind
	X, Y   float64
}

// Snapshot is a deep, read-only copy of everything a renderer or test
// needs. Mutating a snapshot never affects the world.
type Snapshot struct {
	Level    int
	Score    int
	Lives    int
	Over     bool
	MazeName string

	Width, Height int
	Tiles         [][]Tile
	DotsRemaining int

	Player AgentSnapshot
	Ghosts [GhostCount]GhostSnapshot
	Fruit  FruitSnapshot

	FrightenedRemaining float64
	Chase               bool
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Level:    w.level,
		Score:    w.score,
		Lives:    w.lives,
		Over:     w.runOver,
		MazeName: w.layout.Name,

		Width:         w.maze.Width(),
		Height:        w.maze.Height(),
		Tiles:         w.maze.Tiles(),
		DotsRemaining: w.maze.DotsRemaining(),

		Player: AgentSnapshot{X: w.player.X, Y: w.player.Y, Dir: w.player.Dir},
		Fruit: FruitSnapshot{
			Active: w.fruit.Active,
			Kind:   w.fruit.Kind,
			X:      w.fruit.X,
			Y:      w.fruit.Y,
		},

		FrightenedRemaining: w.modes.FrightenedRemaining(),
		Chase:               w.modes.Chase(),
	}
	for i, g := range w.ghosts {
		s.Ghosts[i] = GhostSnapshot{
			AgentSnapshot: AgentSnapshot{X: g.X, Y: g.Y, Dir: g.Dir},
			Personality:   g.Personality,
			Mode:          g.Mode,
		}
	}
	return s
}
