// SPDX-License-Identifier: MIT
package kinematic

// minSteps is a lower bound on the steps one axis needs to travel d while
// changing velocity from v to vGoal, ignoring the other axes and the bounds.
//
// After n steps the displacement lies in [lo(n), hi(n)] where hi sums
// min(v+k·a, m) and lo sums max(v-k·a, -m) for k = 1..n. The velocity needs
// at least ⌈|vGoal-v|/a⌉ steps. Both bounds drop by at most one per real
// step, so the estimate is consistent.
func minSteps(d, v, vGoal, a, m int) int {
	dv := (abs(vGoal-v) + a - 1) / a

	n, lo, hi := 0, 0, 0
	for d < lo || d > hi {
		n++
		lo += max(v-n*a, -m)
		hi += min(v+n*a, m)
	}
	return max(n, dv)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
