package planner

import "github.com/natesimon/sampling-based-planners/spatial"

// steer produces a state at most expandDist from src along the direction
// toward dst, and the length of the step actually taken (spec §4.4).
//
// The reference implementation builds this via a recursive
// atan2/sin/cos spherical decomposition that is, in exact arithmetic,
// equivalent to the closed-form normalize-and-scale below; spec §4.4 and
// §9 explicitly allow substituting the normalized form "provided step
// length is preserved to at least float-64 precision", which this does
// without accumulating per-axis trigonometric rounding error.
func steer(src, dst spatial.State, expandDist float64) (spatial.State, float64) {
	d := src.Distance(dst)
	if d < expandDist {
		return dst.Clone(), d
	}
	direction, _ := dst.Sub(src).Div(d)
	return src.Add(direction.Scale(expandDist)), expandDist
}
