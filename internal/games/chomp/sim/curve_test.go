package sim

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFrightenedDuration(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 6.0}, {2, 5.0}, {3, 4.0}, {4, 3.0}, {5, 2.0},
		{6, 5.0}, {9, 1.0}, {10, 5.0}, {14, 3.0},
		{17, 0.0}, {18, 1.0},
		{19, 0.0}, {25, 0.0}, {100, 0.0},
	}
	for _, tc := range cases {
		if got := FrightenedDuration(tc.level); !almostEqual(got, tc.want) {
			t.Errorf("FrightenedDuration(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}

func TestSpeedMultiplier(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 1.05},
		{5, 1.2},
		{8, 1.35},
		{9, 1.4},
		{20, 1.4},
		{100, 1.4},
	}
	for _, tc := range cases {
		got := SpeedMultiplier(tc.level)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("SpeedMultiplier(%d) = %v, want %v", tc.level, got, tc.want)
		}
		if got > 1.4 {
			t.Errorf("SpeedMultiplier(%d) = %v exceeds the 1.4 cap", tc.level, got)
		}
	}
}

func TestSpeedMultiplierMonotonic(t *testing.T) {
	prev := 0.0
	for level := 1; level <= 30; level++ {
		m := SpeedMultiplier(level)
		if m < prev {
			t.Fatalf("SpeedMultiplier decreased at level %d: %v < %v", level, m, prev)
		}
		prev = m
	}
}

func TestReleaseInterval(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 4.0},
		{2, 3.7},
		{5, 2.8},
		{11, 1.0},
		{20, 1.0},
	}
	for _, tc := range cases {
		got := ReleaseInterval(tc.level)
		if math.Abs(got-tc.want) > 1e-6 {
			t.Errorf("ReleaseInterval(%d) = %v, want %v", tc.level, got, tc.want)
		}
		if got < 1.0-1e-9 {
			t.Errorf("ReleaseInterval(%d) = %v below the 1s floor", tc.level, got)
		}
	}
}
