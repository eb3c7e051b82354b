// Package gamemath holds small geometry helpers shared by the simulation.
package gamemath

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampFloat constrains a value to the range [min, max].
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// CircleOverlapsRect reports whether the circle at (cx, cy) with radius r
// overlaps the rectangle with top-left (x, y) and size w x h. Touching edges
// count as overlapping.
func CircleOverlapsRect(cx, cy, r, x, y, w, h float64) bool {
	nearestX := ClampFloat(cx, x, x+w)
	nearestY := ClampFloat(cy, y, y+h)
	dx := cx - nearestX
	dy := cy - nearestY
	return dx*dx+dy*dy <= r*r
}
