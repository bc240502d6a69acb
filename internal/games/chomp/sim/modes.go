package sim

// ModeController owns the global behavior timers shared by all ghosts:
// the scatter/chase alternation, the frightened override triggered by
// power pellets, and the house release schedule.
type ModeController struct {
	chase        bool
	modeTimer    float64
	modeDuration float64

	frightenedLeft float64
	eatValue       int
	eatBase        int

	releaseTimer float64
}

// NewModeController creates a controller starting in chase mode with the
// given scatter/chase period and base eaten-ghost score value.
func NewModeController(modeDuration float64, eatBase int) ModeController {
	return ModeController{
		chase:        true,
		modeDuration: modeDuration,
		eatValue:     eatBase,
		eatBase:      eatBase,
	}
}

// Advance moves all timers forward by dt. It returns true exactly once
// when the frightened window lapses, so the world can clear ghost flags.
func (c *ModeController) Advance(dt float64) (frightenedExpired bool) {
	c.modeTimer += dt
	if c.modeTimer >= c.modeDuration {
		c.modeTimer = 0
		c.chase = !c.chase
	}

	if c.frightenedLeft > 0 {
		c.frightenedLeft -= dt
		if c.frightenedLeft <= 0 {
			c.frightenedLeft = 0
			c.eatValue = c.eatBase
			return true
		}
	}
	return false
}

// Chase reports whether the global phase is chase (as opposed to scatter).
func (c *ModeController) Chase() bool { return c.chase }

// FrightenedActive reports whether any ghost can currently be vulnerable.
func (c *ModeController) FrightenedActive() bool { return c.frightenedLeft > 0 }

// FrightenedRemaining returns the seconds left on the frightened window.
func (c *ModeController) FrightenedRemaining() float64 { return c.frightenedLeft }

// TriggerFrightened starts (or restarts) the frightened window and resets
// the eaten-ghost score ladder. A zero duration leaves frightened off but
// still resets the ladder.
func (c *ModeController) TriggerFrightened(duration float64) {
	c.frightenedLeft = duration
	c.eatValue = c.eatBase
}

// EatGhost returns the score for eating a ghost right now and doubles the
// value for the next one in the same window.
func (c *ModeController) EatGhost() int {
	v := c.eatValue
	c.eatValue *= 2
	return v
}

// AdvanceRelease moves the house release timer forward and reports whether
// a release is due at the given interval. The caller restarts the timer via
// ReleaseDone on every expiry, whether or not a ghost was waiting.
func (c *ModeController) AdvanceRelease(dt, interval float64) bool {
	c.releaseTimer += dt
	return c.releaseTimer >= interval
}

// ReleaseDone restarts the release timer for the next slot.
func (c *ModeController) ReleaseDone() {
	c.releaseTimer = 0
}

// ResetTimers clears the frightened and release timers, keeping the
// scatter/chase phase. Used when agents respawn after a lost life.
func (c *ModeController) ResetTimers() {
	c.frightenedLeft = 0
	c.eatValue = c.eatBase
	c.releaseTimer = 0
}
