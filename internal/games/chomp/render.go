package chomp

import (
	"fmt"

	"github.com/dkoval/chomp-arcade/internal/core"
	"github.com/dkoval/chomp-arcade/internal/games/chomp/sim"
)

// hudHeight is the number of screen rows reserved above the maze.
const hudHeight = 2

// ghostColors maps a personality to its body color.
var ghostColors = [sim.GhostCount]core.Color{
	sim.Chaser:      core.ColorBrightRed,
	sim.Ambusher:    core.ColorBrightMagenta,
	sim.Flanker:     core.ColorBrightCyan,
	sim.Opportunist: core.ColorOrange,
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.world.Snapshot()
	offX := (dst.Width() - snap.Width) / 2
	offY := hudHeight + (dst.Height()-hudHeight-snap.Height)/2
	if offY < hudHeight {
		offY = hudHeight
	}

	g.renderMaze(dst, snap, offX, offY)
	g.renderFruit(dst, snap, offX, offY)
	g.renderGhosts(dst, snap, offX, offY)
	g.renderPlayer(dst, snap, offX, offY)

	switch {
	case snap.Over:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — Press R to restart", snap.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.world.Snapshot()

	hud := fmt.Sprintf(" Chomp — Score: %d  Level: %d  Lives: %d", snap.Score, snap.Level, snap.Lives)
	if snap.FrightenedRemaining > 0 {
		hud += fmt.Sprintf("  Hunt: %.1fs", snap.FrightenedRemaining)
	}
	if g.layoutErr != nil {
		hud = fmt.Sprintf(" Chomp — maze error: %v", g.layoutErr)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMaze draws the tile grid.
func (g *Game) renderMaze(dst *core.Screen, snap sim.Snapshot, offX, offY int) {
	for y, row := range snap.Tiles {
		for x, tile := range row {
			sx, sy := offX+x, offY+y
			switch tile {
			case sim.TileWall:
				dst.SetColored(sx, sy, '█', core.ColorBlue)
			case sim.TileDot:
				dst.SetColored(sx, sy, '·', core.ColorWhite)
			case sim.TilePowerPellet:
				dst.SetColored(sx, sy, '●', core.ColorBrightYellow)
			case sim.TileDoor:
				dst.SetColored(sx, sy, '─', core.ColorGray)
			}
		}
	}
}

// renderPlayer draws the player agent with a direction-dependent mouth.
func (g *Game) renderPlayer(dst *core.Screen, snap sim.Snapshot, offX, offY int) {
	var ch rune
	switch snap.Player.Dir {
	case sim.DirLeft:
		ch = '>'
	case sim.DirRight:
		ch = '<'
	case sim.DirUp:
		ch = 'v'
	case sim.DirDown:
		ch = '^'
	default:
		ch = 'C'
	}
	x := offX + int(snap.Player.X+0.5)
	y := offY + int(snap.Player.Y+0.5)
	dst.SetColored(x, y, ch, core.ColorBrightYellow)
}

// renderGhosts draws the four pursuers. Frightened ghosts are blue and
// blink during the last two seconds of the window; eaten ghosts render as
// a pair of eyes heading home.
func (g *Game) renderGhosts(dst *core.Screen, snap sim.Snapshot, offX, offY int) {
	for _, gh := range snap.Ghosts {
		x := offX + int(gh.X+0.5)
		y := offY + int(gh.Y+0.5)

		ch := 'M'
		color := ghostColors[gh.Personality]
		switch gh.Mode {
		case sim.ModeFrightened:
			color = core.ColorBrightBlue
			if snap.FrightenedRemaining < 2.0 && int(snap.FrightenedRemaining*4)%2 == 0 {
				color = core.ColorWhite
			}
			ch = 'W'
		case sim.ModeEaten:
			ch = '"'
			color = core.ColorGray
		}
		dst.SetColored(x, y, ch, color)
	}
}

// renderFruit draws the wandering bonus fruit.
func (g *Game) renderFruit(dst *core.Screen, snap sim.Snapshot, offX, offY int) {
	if !snap.Fruit.Active {
		return
	}
	x := offX + int(snap.Fruit.X+0.5)
	y := offY + int(snap.Fruit.Y+0.5)
	dst.SetColored(x, y, '%', core.ColorBrightGreen)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := len([]rune(line1))
	if l := len([]rune(line2)); l > maxLen {
		maxLen = l
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
