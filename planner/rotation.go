package planner

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/natesimon/sampling-based-planners/spatial"
)

// buildRotation computes the proper rotation C that maps the canonical
// ellipsoid frame's first axis onto the start->goal direction, for use by
// the Informed RRT* ellipsoidal sampler (spec §4.6). start and goal must
// share the same dimension D, with D >= 2.
//
// The construction follows the reference: pad the unit start->goal
// direction with a trailing zero to size D+1, form the rank-1 outer
// product M = a1 * e1^T, take its full SVD M = U*S*V^T, then force
// det(C) = +1 by scaling U's last two columns by det(U) and det(V) via a
// diagonal Lambda = diag(1,...,1,det(U),det(V)), C = U*Lambda*V^T.
func buildRotation(start, goal spatial.State) (*mat.Dense, error) {
	if start.Dim() != goal.Dim() {
		return nil, errors.Wrap(spatial.ErrInvalidDim, "planner: start and goal dimensions differ")
	}
	d := start.Dim()
	if d < 2 {
		return nil, errors.Wrap(spatial.ErrInvalidDim, "planner: rotation requires dimension >= 2")
	}

	dist := start.Distance(goal)
	a1, err := goal.Sub(start).Div(dist)
	if err != nil {
		return nil, errors.Wrap(err, "planner: start and goal coincide")
	}

	n := d + 1
	a1Padded := make([]float64, n)
	copy(a1Padded, a1)
	// a1Padded[d] stays zero: the reference's padding convention.

	// M = a1 * e1^T is the n x n matrix whose only nonzero column is
	// column 0, equal to a1Padded.
	m := mat.NewDense(n, n, nil)
	m.SetCol(0, a1Padded)

	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDFull); !ok {
		return nil, errors.New("planner: SVD factorization of rotation seed matrix failed")
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	lambda := make([]float64, n)
	for i := range lambda {
		lambda[i] = 1
	}
	lambda[n-2] = mat.Det(&u)
	lambda[n-1] = mat.Det(&v)

	var c, uLambda mat.Dense
	uLambda.Mul(&u, mat.NewDiagDense(n, lambda))
	c.Mul(&uLambda, v.T())

	return &c, nil
}
