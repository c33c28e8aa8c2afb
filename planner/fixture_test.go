package planner

import (
	"github.com/natesimon/sampling-based-planners/constraint"
	"github.com/natesimon/sampling-based-planners/spatial"
)

// rect is an axis-aligned hyper-rectangle used by rectOracle to describe
// obstacles and gaps in the scenario fixtures from spec §8.
type rect struct {
	low, high spatial.State
}

func (r rect) contains(s spatial.State) bool {
	for i, v := range s {
		if v < r.low[i] || v > r.high[i] {
			return false
		}
	}
	return true
}

// rectOracle is a minimal constraint.Oracle used only by this package's
// tests: a rectangular free space with at most one rectangular obstacle,
// which may itself have a rectangular gap carved out of it. This stands
// in for the 2-D map loader spec §1 places out of scope.
type rectOracle struct {
	space    *spatial.Space
	obstacle *rect
	gap      *rect
}

func (o *rectOracle) Space() *spatial.Space {
	return o.space
}

func (o *rectOracle) Classify(s spatial.State) constraint.Type {
	if !o.space.Contains(s) {
		return constraint.NoEntry
	}
	if o.obstacle != nil && o.obstacle.contains(s) {
		if o.gap != nil && o.gap.contains(s) {
			return constraint.Entry
		}
		return constraint.NoEntry
	}
	return constraint.Entry
}

func (o *rectOracle) SegmentFree(a, b spatial.State) bool {
	return constraint.ParametricSegmentFree(o.Classify, a, b)
}
