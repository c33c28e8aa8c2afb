package constraint

import "github.com/natesimon/sampling-based-planners/spatial"

// parametricSamples are the interpolation ratios the reference RRT
// implementation checks along a candidate segment: spec §4.2 describes
// this as "a 10-sample parametric check at ratios {0.0, 0.1, ..., 0.9}".
var parametricSamples = []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// ParametricSegmentFree implements the reference 10-sample parametric
// segment check: it classifies 10 evenly-spaced points on the segment,
// starting at a itself and stopping short of b, and reports true iff none of them
// classify as NoEntry. Oracle implementations may use this directly as
// their SegmentFree method when a finer, domain-specific check isn't
// available; spec §4.2 calls this out as "a compatibility fallback" and
// warns it "can miss thin obstacles" relative to a finer check.
func ParametricSegmentFree(classify func(spatial.State) Type, a, b spatial.State) bool {
	diff := b.Sub(a)
	for _, ratio := range parametricSamples {
		target := a.Add(diff.Scale(ratio))
		if classify(target) == NoEntry {
			return false
		}
	}
	return true
}
