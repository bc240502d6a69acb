package sim

import (
	"math"
	"testing"
)

const testDt = 1.0 / 60.0

func TestPlayerWallStop(t *testing.T) {
	m := mustParse(t, testTemplate)
	p := Player{X: 2, Y: 1, Dir: DirLeft, Speed: 6.0}

	// Drive into the left wall for two seconds
	for i := 0; i < 120; i++ {
		p.Move(m, testDt)
	}

	// Stopped at the edge of tile (1,1), never inside the wall at x=0
	if p.X < 1.0-wallStopOffset-1e-9 {
		t.Errorf("Player penetrated the wall: x=%v", p.X)
	}
	if !m.Passable(p.Tile().X, p.Tile().Y, false) {
		t.Errorf("Player tile %v is not passable", p.Tile())
	}
}

func TestPlayerIdleTurn(t *testing.T) {
	m := mustParse(t, testTemplate)
	p := Player{X: 1, Y: 1, Speed: 6.0}

	p.Steer(DirDown)
	p.Move(m, testDt)

	if p.Dir != DirDown {
		t.Fatalf("Expected committed direction down, got %v", p.Dir)
	}
	if p.Y <= 1 {
		t.Errorf("Player should have started moving down, y=%v", p.Y)
	}
}

func TestPlayerBlockedTurnStaysQueued(t *testing.T) {
	m := mustParse(t, testTemplate)
	p := Player{X: 2, Y: 1, Dir: DirRight, Speed: 6.0}

	// Down from (2,1) is a wall; the queued turn must wait
	p.Steer(DirDown)
	p.Move(m, testDt)

	if p.Dir != DirRight {
		t.Errorf("Blocked turn should not commit, dir=%v", p.Dir)
	}
	if p.Queued != DirDown {
		t.Errorf("Queued direction should persist, got %v", p.Queued)
	}
}

func TestPlayerCornerTurnSnapsLane(t *testing.T) {
	m := mustParse(t, testTemplate)

	// Approach the corner at (5,1) from the left with a queued down turn
	p := Player{X: 4.0, Y: 1, Dir: DirRight, Speed: 6.0}
	p.Steer(DirDown)

	for i := 0; i < 60 && p.Dir != DirDown; i++ {
		p.Move(m, testDt)
	}

	if p.Dir != DirDown {
		t.Fatal("Queued turn never committed at the corner")
	}
	if math.Abs(p.X-5.0) > 1e-9 {
		t.Errorf("Turn should snap x to the corner lane, x=%v", p.X)
	}
}

func TestPlayerTunnelWrap(t *testing.T) {
	m := mustParse(t, testTemplate)
	p := Player{X: 0.5, Y: 3, Dir: DirLeft, Speed: 6.0}

	wrapped := false
	for i := 0; i < 120; i++ {
		p.Move(m, testDt)
		if p.X > 5.5 {
			wrapped = true
			break
		}
	}
	if !wrapped {
		t.Fatalf("Player never wrapped through the tunnel, x=%v", p.X)
	}
	if p.Y != 3 {
		t.Errorf("Wrap should preserve the row, y=%v", p.Y)
	}
}

func TestPlayerNeverEntersWall(t *testing.T) {
	m := mustParse(t, testTemplate)
	p := Player{X: 1, Y: 1, Speed: 6.0}

	// Sweep through a fixed steering script and check the invariant
	script := []Direction{DirRight, DirDown, DirRight, DirUp, DirLeft, DirDown}
	for i := 0; i < 600; i++ {
		p.Steer(script[(i/100)%len(script)])
		p.Move(m, testDt)

		tile := p.Tile()
		if !m.Passable(tile.X, tile.Y, false) {
			t.Fatalf("Tick %d: player occupies impassable tile %v (x=%v y=%v)", i, tile, p.X, p.Y)
		}
	}
}
