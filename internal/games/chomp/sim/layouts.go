package sim

// Layout bundles a maze template with the fixed agent geometry that goes
// with it. All built-in layouts share the same ghost house region
// (rows 8-11), so spawn metadata is identical across them.
type Layout struct {
	Name     string
	Template []string

	PlayerSpawn Point
	// GhostSpawns is indexed by Personality. The Chaser spawns outside the
	// house; the other three start inside.
	GhostSpawns [GhostCount]Point
	Door        Point // house door tile; Eaten ghosts navigate here
	ExitPoint   Point // tile just outside the door where released ghosts appear

	// Vertical bounds for the idle bobbing of in-house ghosts.
	HouseTopY    float64
	HouseBottomY float64
}

// ScatterTarget returns the fixed corner tile for a ghost personality.
// One corner per ghost, derived from the grid dimensions.
func (l Layout) ScatterTarget(p Personality, width, height int) Point {
	switch p {
	case Chaser:
		return Point{X: width - 2, Y: 0}
	case Ambusher:
		return Point{X: 1, Y: 0}
	case Flanker:
		return Point{X: width - 2, Y: height - 1}
	default: // Opportunist
		return Point{X: 0, Y: height - 1}
	}
}

// builtinLayouts are the embedded 21x19 maze rotations. Tile codes:
// 0=open, 1=wall, 2=dot, 3=power pellet, 4=ghost house door.
// Every corridor is one tile wide, every dot is reachable, and each maze
// has two tunnel rows (edge cells open).
var builtinLayouts = []Layout{
	{
		Name: "pink",
		Template: []string{
			"111111111111111111111",
			"122212221222122212221",
			"121212121212121212121",
			"032212221222122212230",
			"121222122212221222121",
			"122212221222122212221",
			"121222122212221222121",
			"122212221222122212221",
			"121212121141121212121",
			"021212121000121212120",
			"121212121000121212121",
			"121212121111121212121",
			"122212221222122212221",
			"121222122212221222121",
			"122212221222122212221",
			"131222122212221222131",
			"121212121212121212121",
			"122212221222122212221",
			"111111111111111111111",
		},
		PlayerSpawn: Point{X: 10, Y: 14},
		GhostSpawns: [GhostCount]Point{
			{X: 10, Y: 7},  // Chaser, outside the house
			{X: 10, Y: 9},  // Ambusher
			{X: 9, Y: 10},  // Flanker
			{X: 11, Y: 10}, // Opportunist
		},
		Door:         Point{X: 10, Y: 8},
		ExitPoint:    Point{X: 10, Y: 7},
		HouseTopY:    9.0,
		HouseBottomY: 10.5,
	},
	{
		Name: "cyan",
		Template: []string{
			"111111111111111111111",
			"132112221222122211231",
			"122212221222122212221",
			"121222122212221222121",
			"122212221222122212221",
			"121212121212121212121",
			"122212221222122212221",
			"122212221222122212221",
			"121212121141121212121",
			"021212121000121212120",
			"121212121000121212121",
			"121212121111121212121",
			"122212221222122212221",
			"121222122212221222121",
			"122212221222122212221",
			"031222122212221222130",
			"122212221222122212221",
			"122112221222122211221",
			"111111111111111111111",
		},
		PlayerSpawn: Point{X: 10, Y: 14},
		GhostSpawns: [GhostCount]Point{
			{X: 10, Y: 7},
			{X: 10, Y: 9},
			{X: 9, Y: 10},
			{X: 11, Y: 10},
		},
		Door:         Point{X: 10, Y: 8},
		ExitPoint:    Point{X: 10, Y: 7},
		HouseTopY:    9.0,
		HouseBottomY: 10.5,
	},
	{
		Name: "amber",
		Template: []string{
			"111111111111111111111",
			"132212221222122212231",
			"121222122212221222121",
			"022212221222122212220",
			"121222122212221222121",
			"122212221222122212221",
			"121212121212121212121",
			"122212221222122212221",
			"121212121141121212121",
			"021212121000121212120",
			"121212121000121212121",
			"121212121111121212121",
			"122212221222122212221",
			"121212121212121212121",
			"122212221222122212221",
			"131222122212221222131",
			"122212221222122212221",
			"122212221222122212221",
			"111111111111111111111",
		},
		PlayerSpawn: Point{X: 10, Y: 14},
		GhostSpawns: [GhostCount]Point{
			{X: 10, Y: 7},
			{X: 10, Y: 9},
			{X: 9, Y: 10},
			{X: 11, Y: 10},
		},
		Door:         Point{X: 10, Y: 8},
		ExitPoint:    Point{X: 10, Y: 7},
		HouseTopY:    9.0,
		HouseBottomY: 10.5,
	},
	{
		Name: "blue",
		Template: []string{
			"111111111111111111111",
			"122212221222122212221",
			"121212121212121212121",
			"132212221222122212231",
			"121222122212221222121",
			"122212221222122212221",
			"121212121212121212121",
			"122212221222122212221",
			"121212121141121212121",
			"021212121000121212120",
			"121212121000121212121",
			"121212121111121212121",
			"122212221222122212221",
			"121222122212221222121",
			"122212221222122212221",
			"031222122212221222130",
			"122212221222122212221",
			"122112221222122211221",
			"111111111111111111111",
		},
		PlayerSpawn: Point{X: 10, Y: 14},
		GhostSpawns: [GhostCount]Point{
			{X: 10, Y: 7},
			{X: 10, Y: 9},
			{X: 9, Y: 10},
			{X: 11, Y: 10},
		},
		Door:         Point{X: 10, Y: 8},
		ExitPoint:    Point{X: 10, Y: 7},
		HouseTopY:    9.0,
		HouseBottomY: 10.5,
	},
}

// LayoutCount returns the number of built-in layouts.
func LayoutCount() int {
	return len(builtinLayouts)
}

// LayoutForLevel selects the built-in layout for a level. Early levels walk
// through the rotation in fixed bands; from level 15 on the last two mazes
// alternate.
func LayoutForLevel(level int) Layout {
	switch {
	case level <= 2:
		return builtinLayouts[0]
	case level <= 5:
		return builtinLayouts[1]
	case level <= 9:
		return builtinLayouts[2]
	case level <= 14:
		return builtinLayouts[3]
	default:
		return builtinLayouts[2+((level-15)%2)]
	}
}
