package sim

// Level-indexed difficulty functions. Each is pure and stateless; the world
// re-evaluates them once per level transition and applies the results to
// all ghosts at once.

// frightenedTable maps low levels to vulnerability windows in seconds.
// Some entries are deliberately short or zero: late levels grant little or
// no time to hunt ghosts.
var frightenedTable = map[int]float64{
	1: 6.0, 2: 5.0, 3: 4.0, 4: 3.0, 5: 2.0,
	6: 5.0, 7: 4.0, 8: 3.0, 9: 1.0, 10: 5.0,
	11: 2.0, 12: 1.0, 13: 1.0, 14: 3.0, 15: 1.0,
	16: 1.0, 17: 0.0, 18: 1.0,
}

// FrightenedDuration returns the power-pellet vulnerability window for a
// level, in seconds. From level 19 on there is none at all.
func FrightenedDuration(level int) float64 {
	if level >= 19 {
		return 0.0
	}
	if d, ok := frightenedTable[level]; ok {
		return d
	}
	return 6.0
}

// SpeedMultiplier returns the ghost speed scale for a level: a 5% ramp per
// level with a hard cap at 1.4.
func SpeedMultiplier(level int) float64 {
	m := 1.0 + float64(level-1)*0.05
	if m > 1.4 {
		return 1.4
	}
	return m
}

// ReleaseInterval returns the seconds between ghost releases from the
// house: a 0.3s decay per level with a 1s floor.
func ReleaseInterval(level int) float64 {
	interval := 4.0 - float64(level-1)*0.3
	if interval < 1.0 {
		return 1.0
	}
	return interval
}
