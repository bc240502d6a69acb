package sim

import "testing"

func TestModePhaseAlternation(t *testing.T) {
	c := NewModeController(20.0, 200)

	if !c.Chase() {
		t.Fatal("Controller should start in chase")
	}

	// Run 19.9s: still chase
	for i := 0; i < 199; i++ {
		c.Advance(0.1)
	}
	if !c.Chase() {
		t.Error("Phase flipped before the duration elapsed")
	}

	// Cross the boundary
	c.Advance(0.2)
	if c.Chase() {
		t.Error("Phase should flip to scatter after the duration")
	}

	// And back again
	for i := 0; i < 201; i++ {
		c.Advance(0.1)
	}
	if !c.Chase() {
		t.Error("Phase should flip back to chase")
	}
}

func TestFrightenedWindow(t *testing.T) {
	c := NewModeController(20.0, 200)

	if c.FrightenedActive() {
		t.Fatal("Frightened should start inactive")
	}

	c.TriggerFrightened(6.0)
	if !c.FrightenedActive() {
		t.Fatal("Frightened should be active after trigger")
	}

	expired := false
	elapsed := 0.0
	for i := 0; i < 100; i++ {
		if c.Advance(0.1) {
			expired = true
			break
		}
		elapsed += 0.1
	}
	if !expired {
		t.Fatal("Frightened window never expired")
	}
	if elapsed < 5.8 || elapsed > 6.2 {
		t.Errorf("Frightened expired after %.1fs, want ~6s", elapsed)
	}
	if c.FrightenedActive() {
		t.Error("Frightened should be inactive after expiry")
	}

	// Expiry fires exactly once
	if c.Advance(0.1) {
		t.Error("Expiry signal should not repeat")
	}
}

func TestEatGhostLadder(t *testing.T) {
	c := NewModeController(20.0, 200)
	c.TriggerFrightened(6.0)

	for i, want := range []int{200, 400, 800, 1600} {
		if got := c.EatGhost(); got != want {
			t.Errorf("Ghost %d worth %d, want %d", i+1, got, want)
		}
	}

	// A fresh window resets the ladder
	c.TriggerFrightened(6.0)
	if got := c.EatGhost(); got != 200 {
		t.Errorf("Ladder should reset on a new window, got %d", got)
	}
}

func TestReleaseTimer(t *testing.T) {
	c := NewModeController(20.0, 200)

	if c.AdvanceRelease(3.9, 4.0) {
		t.Error("Release should not be due before the interval")
	}
	if !c.AdvanceRelease(0.2, 4.0) {
		t.Error("Release should be due after the interval")
	}

	c.ReleaseDone()
	if c.AdvanceRelease(0.1, 4.0) {
		t.Error("Release timer should restart after ReleaseDone")
	}
}
