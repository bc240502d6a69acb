package sim

import (
	"errors"
	"testing"
)

func TestBuiltinLayoutsValid(t *testing.T) {
	for _, l := range builtinLayouts {
		if err := ValidateLayout(l); err != nil {
			t.Errorf("Built-in layout %q failed validation: %v", l.Name, err)
		}
	}
}

// validTestLayout returns a small layout that passes all checks; cases
// mutate a copy to provoke a single failure.
func validTestLayout() Layout {
	return Layout{
		Name: "test",
		Template: []string{
			"1111111",
			"1222221",
			"1214121",
			"0200020",
			"1211121",
			"1222221",
			"1111111",
		},
		PlayerSpawn:  Point{X: 1, Y: 5},
		GhostSpawns:  [GhostCount]Point{{X: 3, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 3}, {X: 4, Y: 3}},
		Door:         Point{X: 3, Y: 2},
		ExitPoint:    Point{X: 3, Y: 1},
		HouseTopY:    3.0,
		HouseBottomY: 3.5,
	}
}

func TestValidateLayoutOK(t *testing.T) {
	if err := ValidateLayout(validTestLayout()); err != nil {
		t.Fatalf("Valid layout rejected: %v", err)
	}
}

func TestValidateLayoutErrors(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*Layout)
		wantCode string
	}{
		{
			name:     "ragged template",
			mutate:   func(l *Layout) { l.Template = []string{"111", "11"} },
			wantCode: "BAD_TEMPLATE",
		},
		{
			name: "no tunnel row",
			mutate: func(l *Layout) {
				l.Template[3] = "1200021"
			},
			wantCode: "NO_TUNNEL",
		},
		{
			name: "tunnel open at one edge only",
			mutate: func(l *Layout) {
				l.Template[3] = "0200021"
			},
			wantCode: "BAD_EDGE",
		},
		{
			name: "edible edge cell",
			mutate: func(l *Layout) {
				l.Template[5] = "2222221"
			},
			wantCode: "BAD_EDGE",
		},
		{
			name: "no dots",
			mutate: func(l *Layout) {
				l.Template = []string{
					"111",
					"000",
					"111",
				}
			},
			wantCode: "NO_DOTS",
		},
		{
			name:     "door metadata off",
			mutate:   func(l *Layout) { l.Door = Point{X: 1, Y: 1} },
			wantCode: "BAD_DOOR",
		},
		{
			name:     "player spawn in wall",
			mutate:   func(l *Layout) { l.PlayerSpawn = Point{X: 0, Y: 0} },
			wantCode: "BAD_PLAYER_SPAWN",
		},
		{
			// A tunnel row wraps x in Passable, so only an explicit bounds
			// check keeps this out of the reachability flood.
			name:     "player spawn off grid on tunnel row",
			mutate:   func(l *Layout) { l.PlayerSpawn = Point{X: -1, Y: 3} },
			wantCode: "BAD_PLAYER_SPAWN",
		},
		{
			name:     "ghost spawn in wall",
			mutate:   func(l *Layout) { l.GhostSpawns[2] = Point{X: 0, Y: 0} },
			wantCode: "BAD_GHOST_SPAWN",
		},
		{
			name:     "ghost spawn off grid on tunnel row",
			mutate:   func(l *Layout) { l.GhostSpawns[1] = Point{X: 9, Y: 3} },
			wantCode: "BAD_GHOST_SPAWN",
		},
		{
			name:     "exit in wall",
			mutate:   func(l *Layout) { l.ExitPoint = Point{X: 0, Y: 0} },
			wantCode: "BAD_EXIT",
		},
		{
			name:     "exit off grid",
			mutate:   func(l *Layout) { l.ExitPoint = Point{X: 7, Y: 3} },
			wantCode: "BAD_EXIT",
		},
		{
			name:     "inverted house bounds",
			mutate:   func(l *Layout) { l.HouseTopY, l.HouseBottomY = 4, 3 },
			wantCode: "BAD_HOUSE",
		},
		{
			name: "walled-off dot",
			mutate: func(l *Layout) {
				// Seal the dot at (5,5) behind walls
				l.Template[4] = "1211111"
				l.Template[5] = "1222121"
			},
			wantCode: "UNREACHABLE_DOT",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := validTestLayout()
			l.Template = append([]string(nil), l.Template...)
			tc.mutate(&l)

			err := ValidateLayout(l)
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %T", err)
			}
			if verr.Code != tc.wantCode {
				t.Errorf("Code = %s, want %s", verr.Code, tc.wantCode)
			}
		})
	}
}
