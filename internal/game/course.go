package game

import "math"

// Courses run from 1.0 to 9.0 clockwise on screen: 1 is +x (right), 3 is up (-y),
// 5 is -x and 7 is down (+y). 9 wraps around to 1.
const (
	minCourse = 1.0
	maxCourse = 9.0

	// phaserFalloff is the distance at which delivered energy reaches zero.
	phaserFalloff = 11.3
)

// courseAngle converts a course to radians in grid space.
func courseAngle(course float64) float64 {
	return -math.Pi * (course - 1) / 4
}

// courseVector returns the unit step for a course. Cardinal courses are exact.
func courseVector(course float64) (dx, dy float64) {
	switch course {
	case 1, 9:
		return 1, 0
	case 3:
		return 0, -1
	case 5:
		return -1, 0
	case 7:
		return 0, 1
	}
	a := courseAngle(course)
	return math.Cos(a), math.Sin(a)
}

// ComputeDirection returns the course that points from one grid position to another.
func ComputeDirection(from, to Coord) float64 {
	switch {
	case from.X == to.X:
		if from.Y < to.Y {
			return 7
		}
		return 3
	case from.Y == to.Y:
		if from.X < to.X {
			return 1
		}
		return 5
	}

	dy := math.Abs(float64(to.Y - from.Y))
	dx := math.Abs(float64(to.X - from.X))
	a := math.Atan2(dy, dx)
	switch {
	case from.X < to.X && from.Y < to.Y:
		return 9 - 4*a/math.Pi
	case from.X < to.X:
		return 1 + 4*a/math.Pi
	case from.Y < to.Y:
		return 5 + 4*a/math.Pi
	default:
		return 5 - 4*a/math.Pi
	}
}

// Distance is the euclidean distance between two grid positions.
func Distance(a, b Coord) float64 {
	return math.Hypot(float64(b.X-a.X), float64(b.Y-a.Y))
}

// falloff scales energy fired over distance d. The result may be negative past
// phaserFalloff, matching the way the delivered damage is truncated afterwards.
func falloff(energy, d float64) float64 {
	return energy * (1 - d/phaserFalloff)
}

// roundGrid rounds a continuous coordinate to a grid index, halves to even.
func roundGrid(v float64) int {
	return int(math.RoundToEven(v))
}
