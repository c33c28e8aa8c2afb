package planner

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/natesimon/sampling-based-planners/constraint"
	"github.com/natesimon/sampling-based-planners/spatial"
)

// sampleGoalBiasedUniform implements spec §4.3's goal-biased uniform
// sampler: with probability goalSamplingRate return goal outright,
// otherwise draw a point uniformly per-dimension inside space, rejecting
// and retrying while the oracle classifies it NoEntry.
func sampleGoalBiasedUniform(
	space *spatial.Space,
	goal spatial.State,
	goalSamplingRate float64,
	oracle constraint.Oracle,
	rng *rand.Rand,
) spatial.State {
	if rng.Float64() <= goalSamplingRate {
		return goal
	}
	for {
		s := make(spatial.State, space.Dim())
		for i := range s {
			b, _ := space.Bound(i)
			s[i] = b.Low + rng.Float64()*(b.High-b.Low)
		}
		if oracle.Classify(s) != constraint.NoEntry {
			return s
		}
	}
}

// ellipsoidSampler draws candidates from the informed set: the open
// hyper-ellipsoid with foci at start and goal and semi-major axis
// cBest/2 (spec §4.3). It is only meaningful once at least one node lies
// in the goal region, i.e. once a finite cBest exists.
type ellipsoidSampler struct {
	center   spatial.State // (start+goal)/2, padded to D+1 with a trailing zero
	rotation *mat.Dense    // D+1 x D+1 proper rotation, start->goal direction on column 0
	cMin     float64       // distance(start, goal)
	dim      int           // D, the caller-visible dimension (rotation/center are D+1)
}

func newEllipsoidSampler(start, goal spatial.State) (*ellipsoidSampler, error) {
	rotation, err := buildRotation(start, goal)
	if err != nil {
		return nil, err
	}
	d := start.Dim()
	mid := start.Add(goal).Scale(0.5)
	center := make(spatial.State, d+1)
	copy(center, mid)
	// center[d] stays zero: the reference's padding convention (spec §4.3, §9 open question).
	return &ellipsoidSampler{
		center:   center,
		rotation: rotation,
		cMin:     start.Distance(goal),
		dim:      d,
	}, nil
}

// sample draws one candidate from the D-dimensional ellipsoid with
// semi-major axis cBest/2, given the current best goal-region cost.
// Rejection on NoEntry is the caller's responsibility (spec §4.3), since
// the oracle check must use the D-dimensional projection, not the padded
// D+1 vector this function builds internally.
func (es *ellipsoidSampler) sample(cBest float64, rng *rand.Rand) (spatial.State, error) {
	ball, err := sampleUnitBall(es.dim, rng)
	if err != nil {
		return nil, err
	}
	ballPadded := make(spatial.State, es.dim+1)
	copy(ballPadded, ball)
	// ballPadded[dim] stays zero, mirroring the reference's padding convention.

	r := math.Sqrt(cBest*cBest-es.cMin*es.cMin) / 2
	diag := make([]float64, es.dim+1)
	for i := range diag {
		diag[i] = r
	}
	diag[0] = cBest / 2

	scaled := make([]float64, es.dim+1)
	for i := range scaled {
		scaled[i] = diag[i] * ballPadded[i]
	}

	rotated := mat.NewVecDense(es.dim+1, nil)
	rotated.MulVec(es.rotation, mat.NewVecDense(es.dim+1, scaled))

	out := make(spatial.State, es.dim)
	for i := range out {
		out[i] = rotated.AtVec(i) + es.center[i]
	}
	return out, nil
}

// sampleInformed implements the Informed RRT* candidate-selection policy
// of spec §4.5 step b: goal-biased first, then uniform-in-box while no
// goal-region solution exists yet, then ellipsoidal once cBest is finite.
// ok is false when a non-goal candidate was rejected by the oracle and the
// caller should skip the rest of this iteration, per spec §4.5.
func sampleInformed(
	space *spatial.Space,
	start, goal spatial.State,
	goalSamplingRate float64,
	cBest float64,
	ellipsoid *ellipsoidSampler,
	oracle constraint.Oracle,
	rng *rand.Rand,
) (candidate spatial.State, ok bool) {
	if rng.Float64() <= goalSamplingRate {
		return goal, true
	}

	var s spatial.State
	if math.IsInf(cBest, 1) {
		s = make(spatial.State, space.Dim())
		for i := range s {
			b, _ := space.Bound(i)
			s[i] = b.Low + rng.Float64()*(b.High-b.Low)
		}
	} else {
		var err error
		s, err = ellipsoid.sample(cBest, rng)
		if err != nil {
			return nil, false
		}
	}

	if oracle.Classify(s) == constraint.NoEntry {
		return nil, false
	}
	return s, true
}
