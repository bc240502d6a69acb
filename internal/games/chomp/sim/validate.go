package sim

import "fmt"

// ValidationError contains details about a layout validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateLayout performs comprehensive validation of a maze layout.
// Checks:
//   - Template parses (rectangular, known tile codes)
//   - Edge cells are walls except on tunnel rows
//   - At least one tunnel row
//   - Door and spawn metadata lands on sensible tiles, inside the grid
//   - Every dot and pellet is reachable from the player spawn
func ValidateLayout(l Layout) error {
	m, err := ParseMaze(l.Template)
	if err != nil {
		return ValidationError{Code: "BAD_TEMPLATE", Message: err.Error()}
	}

	// Movement wraps any agent that crosses a horizontal edge, so a row may
	// only reach the edge as a tunnel (both mouths open). A row open or
	// edible at one edge would wrap an agent into whatever sits on the
	// other side, walls included.
	for y := 0; y < m.Height(); y++ {
		if m.IsTunnelRow(y) {
			continue
		}
		if m.TileAt(0, y) != TileWall || m.TileAt(m.Width()-1, y) != TileWall {
			return ValidationError{
				Code:    "BAD_EDGE",
				Message: fmt.Sprintf("row %d touches a horizontal edge without wrapping; edge cells must be walls unless both are open tunnel mouths", y),
			}
		}
	}

	if len(m.TunnelRows()) == 0 {
		return ValidationError{
			Code:    "NO_TUNNEL",
			Message: "maze has no tunnel row (a row whose edge cells are both open)",
		}
	}

	if m.DotsTotal() == 0 {
		return ValidationError{
			Code:    "NO_DOTS",
			Message: "maze has no dots or power pellets, the level can never be won",
		}
	}

	if err := validateGeometry(m, l); err != nil {
		return err
	}

	return validateReachability(m, l)
}

// validateGeometry checks that the layout metadata points at usable tiles.
// Coordinates are bounds-checked before any tile lookup: Passable wraps x
// on tunnel rows, so an out-of-grid spawn could slip through and blow up
// the reachability flood later.
func validateGeometry(m *Maze, l Layout) error {
	if !inGrid(m, l.Door) {
		return ValidationError{
			Code:    "BAD_DOOR",
			Message: fmt.Sprintf("door tile (%d,%d) is outside the grid", l.Door.X, l.Door.Y),
		}
	}
	if !inGrid(m, l.PlayerSpawn) {
		return ValidationError{
			Code:    "BAD_PLAYER_SPAWN",
			Message: fmt.Sprintf("player spawn (%d,%d) is outside the grid", l.PlayerSpawn.X, l.PlayerSpawn.Y),
		}
	}
	if !inGrid(m, l.ExitPoint) {
		return ValidationError{
			Code:    "BAD_EXIT",
			Message: fmt.Sprintf("house exit (%d,%d) is outside the grid", l.ExitPoint.X, l.ExitPoint.Y),
		}
	}
	for p, spawn := range l.GhostSpawns {
		if !inGrid(m, spawn) {
			return ValidationError{
				Code:    "BAD_GHOST_SPAWN",
				Message: fmt.Sprintf("%s spawn (%d,%d) is outside the grid", Personality(p), spawn.X, spawn.Y),
			}
		}
	}

	if m.TileAt(l.Door.X, l.Door.Y) != TileDoor {
		return ValidationError{
			Code:    "BAD_DOOR",
			Message: fmt.Sprintf("door tile (%d,%d) is not a door", l.Door.X, l.Door.Y),
		}
	}

	if !m.Passable(l.PlayerSpawn.X, l.PlayerSpawn.Y, false) {
		return ValidationError{
			Code:    "BAD_PLAYER_SPAWN",
			Message: fmt.Sprintf("player spawn (%d,%d) is not passable", l.PlayerSpawn.X, l.PlayerSpawn.Y),
		}
	}

	if !m.Passable(l.ExitPoint.X, l.ExitPoint.Y, true) {
		return ValidationError{
			Code:    "BAD_EXIT",
			Message: fmt.Sprintf("house exit (%d,%d) is not passable", l.ExitPoint.X, l.ExitPoint.Y),
		}
	}

	for p, spawn := range l.GhostSpawns {
		if !m.Passable(spawn.X, spawn.Y, true) {
			return ValidationError{
				Code:    "BAD_GHOST_SPAWN",
				Message: fmt.Sprintf("%s spawn (%d,%d) is not passable", Personality(p), spawn.X, spawn.Y),
			}
		}
	}

	if l.HouseTopY >= l.HouseBottomY {
		return ValidationError{
			Code:    "BAD_HOUSE",
			Message: fmt.Sprintf("house bounds inverted: top %.1f >= bottom %.1f", l.HouseTopY, l.HouseBottomY),
		}
	}

	return nil
}

func inGrid(m *Maze, p Point) bool {
	return p.X >= 0 && p.X < m.Width() && p.Y >= 0 && p.Y < m.Height()
}

// validateReachability floods the maze from the player spawn using player
// passability (doors are walls) with tunnel wrap, and checks that every
// edible tile is visited.
func validateReachability(m *Maze, l Layout) error {
	visited := make([][]bool, m.Height())
	for y := range visited {
		visited[y] = make([]bool, m.Width())
	}

	queue := []Point{l.PlayerSpawn}
	visited[l.PlayerSpawn.Y][l.PlayerSpawn.X] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range decisionOrder {
			dx, dy := d.Vector()
			nx, ny := cur.X+dx, cur.Y+dy
			if ny < 0 || ny >= m.Height() {
				continue
			}
			if nx < 0 || nx >= m.Width() {
				if !m.IsTunnelRow(ny) {
					continue
				}
				nx = wrapIndex(nx, m.Width())
			}
			if visited[ny][nx] || !m.Passable(nx, ny, false) {
				continue
			}
			visited[ny][nx] = true
			queue = append(queue, Point{X: nx, Y: ny})
		}
	}

	for y, row := range m.Tiles() {
		for x, t := range row {
			if (t == TileDot || t == TilePowerPellet) && !visited[y][x] {
				return ValidationError{
					Code:    "UNREACHABLE_DOT",
					Message: fmt.Sprintf("edible tile at (%d,%d) is unreachable from the player spawn", x, y),
				}
			}
		}
	}

	return nil
}
