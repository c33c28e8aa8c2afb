package planner

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/natesimon/sampling-based-planners/spatial"
)

// randSource adapts a *rand.Rand to the rand.Source interface expected by
// gonum/stat/distuv.
type randSource struct{ r *rand.Rand }

func (s randSource) Uint64() uint64   { return s.r.Uint64() }
func (s randSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }

// sampleUnitBall draws a point uniformly from the interior of the unit
// dim-dimensional ball: a standard-normal direction, normalized, scaled by
// the dim'th root of a uniform radius so that volume (not radius) is
// uniform. Mirrors the reference implementation's construction (normal
// direction + u^(1/dim) radius); a zero-norm direction is redrawn.
func sampleUnitBall(dim int, rng *rand.Rand) (spatial.State, error) {
	if dim <= 0 {
		return nil, errors.Wrap(spatial.ErrInvalidDim, "planner: sampleUnitBall requires dim >= 1")
	}

	gauss := distuv.Normal{Mu: 0, Sigma: 1, Src: randSource{rng}}

	var x spatial.State
	for {
		x = make(spatial.State, dim)
		for i := range x {
			x[i] = gauss.Rand()
		}
		if r := x.Norm(); r != 0 {
			x, _ = x.Div(r)
			break
		}
	}

	u := rng.Float64()
	radius := math.Pow(u, 1.0/float64(dim))
	return x.Scale(radius), nil
}
