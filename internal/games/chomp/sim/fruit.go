package sim

import (
	"math"
	"math/rand"
)

// FruitKind identifies a bonus fruit. Kinds are ordered by value; the
// level picks the kind, capped at the last entry.
type FruitKind int

const (
	FruitCherry FruitKind = iota
	FruitStrawberry
	FruitOrange
	FruitPretzel
	FruitApple
	FruitPear
	FruitBanana
)

var fruitNames = [...]string{
	"cherry", "strawberry", "orange", "pretzel", "apple", "pear", "banana",
}

var fruitPoints = [...]int{100, 200, 500, 700, 1000, 2000, 5000}

func (k FruitKind) String() string {
	if int(k) < len(fruitNames) {
		return fruitNames[k]
	}
	return "unknown"
}

// Points returns the score value for collecting this fruit.
func (k FruitKind) Points() int {
	if int(k) < len(fruitPoints) {
		return fruitPoints[k]
	}
	return 0
}

// FruitForLevel returns the fruit kind offered on a level. Values ramp up
// with the level and saturate at the banana.
func FruitForLevel(level int) FruitKind {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(fruitPoints) {
		idx = len(fruitPoints) - 1
	}
	return FruitKind(idx)
}

// fruitLifetime is how long a fruit wanders before despawning, in seconds.
const fruitLifetime = 10.0

// fruitSpeedScale is the fruit's speed relative to the player's.
const fruitSpeedScale = 0.75

// fruitCollectRadius is the pickup distance. Slightly larger than the
// ghost collision radius so fruit pickups feel forgiving.
const fruitCollectRadius = 0.8

// Fruit is a wandering bonus item. It enters through a tunnel edge and
// performs a no-reverse random walk until collected or timed out.
type Fruit struct {
	Kind   FruitKind
	X, Y   float64
	Dir    Direction
	Active bool

	age float64
}

// spawnFruit places a fruit on a random tunnel row entering from a random
// side of the maze, heading inward.
func spawnFruit(m *Maze, kind FruitKind, rng *rand.Rand) Fruit {
	rows := m.TunnelRows()
	if len(rows) == 0 {
		return Fruit{}
	}
	row := rows[rng.Intn(len(rows))]

	f := Fruit{Kind: kind, Y: float64(row), Active: true}
	if rng.Intn(2) == 0 {
		f.X = 0
		f.Dir = DirRight
	} else {
		f.X = float64(m.Width() - 1)
		f.Dir = DirLeft
	}
	return f
}

// Tile returns the tile the fruit currently occupies, by rounding.
func (f *Fruit) Tile() Point {
	return Point{X: int(math.Round(f.X)), Y: int(math.Round(f.Y))}
}

// Move advances the fruit along its random walk. At each tile center it
// picks a random passable direction, avoiding a straight reversal when any
// other exit exists. Returns false once the fruit's lifetime lapses.
func (f *Fruit) Move(m *Maze, speed, dt float64, rng *rand.Rand) bool {
	if !f.Active {
		return false
	}
	f.age += dt
	if f.age > fruitLifetime {
		f.Active = false
		return false
	}

	tileX := int(math.Round(f.X))
	tileY := int(math.Round(f.Y))

	atCenter := math.Abs(f.X-float64(tileX)) < centerTol && math.Abs(f.Y-float64(tileY)) < centerTol
	if atCenter {
		f.X = float64(tileX)
		f.Y = float64(tileY)

		reverse := f.Dir.Reverse()
		var candidates []Direction
		for _, d := range decisionOrder {
			dx, dy := d.Vector()
			if !m.Passable(tileX+dx, tileY+dy, false) {
				continue
			}
			if d == reverse {
				continue
			}
			candidates = append(candidates, d)
		}
		if len(candidates) == 0 {
			candidates = append(candidates, reverse)
		}
		f.Dir = candidates[rng.Intn(len(candidates))]
	}

	dx, dy := f.Dir.Vector()
	newX := f.X + float64(dx)*speed*dt
	newY := f.Y + float64(dy)*speed*dt

	checkX := int(math.Round(newX + float64(dx)*wallStopOffset))
	checkY := int(math.Round(newY + float64(dy)*wallStopOffset))

	if m.Passable(checkX, checkY, false) {
		f.X = newX
		f.Y = newY
	} else {
		f.X = math.Round(f.X)
		f.Y = math.Round(f.Y)
	}

	// Tunnel wrap
	if f.X < 0 {
		f.X = float64(m.Width()) - 1.0
	} else if f.X >= float64(m.Width()) {
		f.X = 0.0
	}
	return true
}
