// Package chomp adapts the maze-chase simulation to the arcade platform:
// input mapping, rendering and the registry plumbing live here, the rules
// live in the sim subpackage.
package chomp

import (
	"fmt"

	"github.com/dkoval/chomp-arcade/internal/config"
	"github.com/dkoval/chomp-arcade/internal/core"
	"github.com/dkoval/chomp-arcade/internal/games/chomp/sim"
	"github.com/dkoval/chomp-arcade/internal/registry"
)

// defaultTickRate is used when the runtime config leaves TickRate unset.
const defaultTickRate = 60

// Game implements the chomp maze-chase game.
type Game struct {
	world *sim.World
	cfg   sim.Config
	dt    float64
	tick  uint64
	seed  int64

	screenW int
	screenH int

	paused   bool
	tooSmall bool

	layout    *sim.Layout // custom maze, nil for the built-in rotation
	layoutErr error
}

// Package-level variables wired up by the CLI before game creation.
var (
	configPath       string
	difficultyPreset string
	mazePath         string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetMazePath pins the game to a custom maze layout file instead of the
// built-in rotation.
func SetMazePath(path string) {
	mazePath = path
}

// New creates a new chomp game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("chomp", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "chomp"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Chomp"
}

// simConfig loads the YAML config, applies the difficulty preset and
// converts the result to simulation tunables.
func simConfig() sim.Config {
	cfg, err := config.LoadChomp(configPath)
	if err != nil {
		cfg = config.DefaultChompConfig()
	}
	if difficultyPreset != "" {
		config.ApplyChompPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}

	return sim.Config{
		PlayerSpeed:     cfg.Speeds.Player,
		GhostSpeed:      cfg.Speeds.Ghost,
		FrightenedSpeed: cfg.Speeds.Frightened,
		ModeDuration:    cfg.Timing.ModeDuration,
		EatenFailsafe:   cfg.Timing.EatenFailsafe,
		CollisionRadius: cfg.Gameplay.CollisionRadius,
		DotPoints:       cfg.Scoring.Dot,
		PelletPoints:    cfg.Scoring.PowerPellet,
		GhostBasePoints: cfg.Scoring.GhostBase,
		Lives:           cfg.Gameplay.Lives,
		FixedCurve:      cfg.Gameplay.FixedCurve,
		FruitEnabled:    cfg.Gameplay.Fruit,
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = simConfig()
	g.tick = 0
	g.seed = cfg.Seed
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	g.dt = 1.0 / float64(tickRate)

	g.layout = nil
	g.layoutErr = nil
	if mazePath != "" {
		layout, err := LoadLayoutFile(mazePath)
		if err != nil {
			g.layoutErr = err
		} else {
			g.layout = &layout
		}
	}

	if g.layout != nil {
		w, err := sim.NewWorldWithLayout(g.cfg, cfg.Seed, *g.layout)
		if err != nil {
			g.layoutErr = err
			g.world = sim.NewWorld(g.cfg, cfg.Seed)
		} else {
			g.world = w
		}
	} else {
		g.world = sim.NewWorld(g.cfg, cfg.Seed)
	}

	snap := g.world.Snapshot()
	g.tooSmall = g.screenW < snap.Width || g.screenH < snap.Height+hudHeight
}

// steerFromInput maps the held action set to a simulation direction.
// With several directions held at once the vertical axis wins, matching
// the platform's other games.
func steerFromInput(input core.InputFrame) sim.Direction {
	switch {
	case input.Has(core.ActionUp):
		return sim.DirUp
	case input.Has(core.ActionDown):
		return sim.DirDown
	case input.Has(core.ActionLeft):
		return sim.DirLeft
	case input.Has(core.ActionRight):
		return sim.DirRight
	default:
		return sim.DirNone
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.world.Over() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + int64(g.tick),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(1.0/g.dt + 0.5),
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.world.Over() || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.world.Step(steerFromInput(input), g.dt)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Over(),
		Paused:   g.paused,
	}
}

// Level returns the level the current run has reached.
func (g *Game) Level() int {
	return g.world.Level()
}

// Snapshot exposes the simulation snapshot for tests and debugging.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.world.Snapshot()
	return fmt.Sprintf("Tick: %d, Score: %d, Level: %d (%s), Lives: %d\nPlayer: (%.2f, %.2f) %s\nDots left: %d, Over: %v",
		g.tick, s.Score, s.Level, s.MazeName, s.Lives,
		s.Player.X, s.Player.Y, s.Player.Dir, s.DotsRemaining, s.Over)
}
