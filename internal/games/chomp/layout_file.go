package chomp

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoval/chomp-arcade/internal/games/chomp/sim"
)

// layoutFile is the YAML shape of a custom maze file. The template uses
// the same single-character tile codes as the built-in layouts:
// 0=open, 1=wall, 2=dot, 3=power pellet, 4=ghost house door.
type layoutFile struct {
	Name     string   `yaml:"name"`
	Template []string `yaml:"template"`

	PlayerSpawn pointYAML    `yaml:"player_spawn"`
	GhostSpawns [4]pointYAML `yaml:"ghost_spawns"`
	Door        pointYAML    `yaml:"door"`
	Exit        pointYAML    `yaml:"exit"`

	HouseTopY    float64 `yaml:"house_top_y"`
	HouseBottomY float64 `yaml:"house_bottom_y"`
}

type pointYAML struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (p pointYAML) point() sim.Point {
	return sim.Point{X: p.X, Y: p.Y}
}

// LoadLayoutFile reads and validates a custom maze layout from a YAML
// file. The returned layout is safe to hand to the simulation.
func LoadLayoutFile(path string) (sim.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sim.Layout{}, fmt.Errorf("failed to read maze %s: %w", path, err)
	}

	var lf layoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return sim.Layout{}, fmt.Errorf("failed to parse maze %s: %w", path, err)
	}

	layout := sim.Layout{
		Name:         lf.Name,
		Template:     lf.Template,
		PlayerSpawn:  lf.PlayerSpawn.point(),
		Door:         lf.Door.point(),
		ExitPoint:    lf.Exit.point(),
		HouseTopY:    lf.HouseTopY,
		HouseBottomY: lf.HouseBottomY,
	}
	for i, p := range lf.GhostSpawns {
		layout.GhostSpawns[i] = p.point()
	}
	if layout.Name == "" {
		layout.Name = "custom"
	}

	if err := sim.ValidateLayout(layout); err != nil {
		return sim.Layout{}, fmt.Errorf("invalid maze %s: %w", path, err)
	}
	return layout, nil
}
