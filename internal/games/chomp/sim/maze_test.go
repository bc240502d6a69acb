package sim

import "testing"

// testTemplate is a small symmetric maze with one tunnel row (y=3).
var testTemplate = []string{
	"1111111",
	"1222221",
	"1211121",
	"0200020",
	"1211121",
	"1222221",
	"1111111",
}

func mustParse(t *testing.T, template []string) *Maze {
	t.Helper()
	m, err := ParseMaze(template)
	if err != nil {
		t.Fatalf("ParseMaze failed: %v", err)
	}
	return m
}

func TestParseMaze(t *testing.T) {
	m := mustParse(t, testTemplate)

	if m.Width() != 7 || m.Height() != 7 {
		t.Errorf("Expected 7x7 maze, got %dx%d", m.Width(), m.Height())
	}

	// 5+5 dots on rows 1 and 5, 2+2 on the vertical corridors, 2 on the tunnel row
	want := 0
	for _, row := range testTemplate {
		for _, ch := range row {
			if ch == '2' || ch == '3' {
				want++
			}
		}
	}
	if m.DotsTotal() != want {
		t.Errorf("Expected %d dots, got %d", want, m.DotsTotal())
	}
	if m.DotsRemaining() != m.DotsTotal() {
		t.Errorf("DotsRemaining should start equal to DotsTotal")
	}

	rows := m.TunnelRows()
	if len(rows) != 1 || rows[0] != 3 {
		t.Errorf("Expected tunnel rows [3], got %v", rows)
	}
}

func TestParseMazeErrors(t *testing.T) {
	cases := []struct {
		name     string
		template []string
	}{
		{"empty", nil},
		{"ragged", []string{"111", "11"}},
		{"bad code", []string{"111", "1x1", "111"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseMaze(tc.template); err == nil {
				t.Errorf("Expected error for %s template", tc.name)
			}
		})
	}
}

func TestTileAtWrap(t *testing.T) {
	m := mustParse(t, testTemplate)

	// Tunnel row wraps horizontally
	if got := m.TileAt(-1, 3); got != TileOpen {
		t.Errorf("TileAt(-1,3) should wrap to open edge cell, got %v", got)
	}
	if got := m.TileAt(7, 3); got != TileOpen {
		t.Errorf("TileAt(7,3) should wrap to open edge cell, got %v", got)
	}

	// Non-tunnel rows resolve out-of-range to wall
	if got := m.TileAt(-1, 1); got != TileWall {
		t.Errorf("TileAt(-1,1) on non-tunnel row should be wall, got %v", got)
	}
	if got := m.TileAt(3, -1); got != TileWall {
		t.Errorf("TileAt out-of-range y should be wall, got %v", got)
	}
	if got := m.TileAt(3, 7); got != TileWall {
		t.Errorf("TileAt out-of-range y should be wall, got %v", got)
	}
}

func TestPassableDoor(t *testing.T) {
	m := mustParse(t, []string{
		"111",
		"040",
		"101",
		"111",
	})

	if m.Passable(1, 1, false) {
		t.Error("Door should not be passable for the player")
	}
	if !m.Passable(1, 1, true) {
		t.Error("Door should be passable for ghosts")
	}
	if m.Passable(0, 2, true) {
		t.Error("Wall should not be passable for anyone")
	}
}

func TestConsume(t *testing.T) {
	m := mustParse(t, testTemplate)
	before := m.DotsRemaining()

	tile, ok := m.Consume(1, 1)
	if !ok || tile != TileDot {
		t.Fatalf("Expected to consume a dot at (1,1), got %v ok=%v", tile, ok)
	}
	if m.DotsRemaining() != before-1 {
		t.Errorf("DotsRemaining should drop by 1, got %d want %d", m.DotsRemaining(), before-1)
	}

	// Second consume of the same tile finds nothing
	if _, ok := m.Consume(1, 1); ok {
		t.Error("Consuming an already-eaten tile should return false")
	}

	// Open and out-of-range tiles hold nothing
	if _, ok := m.Consume(0, 3); ok {
		t.Error("Consuming an open tile should return false")
	}
	if _, ok := m.Consume(-1, 3); ok {
		t.Error("Consuming out of range should return false")
	}
}

func TestTilesDeepCopy(t *testing.T) {
	m := mustParse(t, testTemplate)
	tiles := m.Tiles()
	tiles[1][1] = TileWall

	if m.TileAt(1, 1) != TileDot {
		t.Error("Mutating a Tiles() copy must not affect the maze")
	}
}
