// Package spatial provides the Euclidean configuration-space primitives
// shared by the sampling-based planners: states, per-dimension bounds,
// and the bounded space they live in.
package spatial

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// State is an ordered sequence of D real numbers, the configuration-space
// point the planners sample, steer between, and return as a path.
type State []float64

// NewState returns a State with the given component values.
func NewState(values ...float64) State {
	s := make(State, len(values))
	copy(s, values)
	return s
}

// Dim returns the number of components in the state.
func (s State) Dim() int {
	return len(s)
}

// Clone returns an independent copy of s.
func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Add returns the elementwise sum of s and other.
func (s State) Add(other State) State {
	out := make(State, len(s))
	for i := range s {
		out[i] = s[i] + other[i]
	}
	return out
}

// Sub returns the elementwise difference s - other.
func (s State) Sub(other State) State {
	out := make(State, len(s))
	for i := range s {
		out[i] = s[i] - other[i]
	}
	return out
}

// Scale returns s with every component multiplied by k.
func (s State) Scale(k float64) State {
	out := make(State, len(s))
	for i := range s {
		out[i] = s[i] * k
	}
	return out
}

// Div returns s with every component divided by k. Division by zero is a
// caller error; it returns ErrDivideByZero rather than propagating Inf/NaN.
func (s State) Div(k float64) (State, error) {
	if k == 0 {
		return nil, errors.Wrap(ErrDivideByZero, "spatial: State.Div")
	}
	out := make(State, len(s))
	for i := range s {
		out[i] = s[i] / k
	}
	return out, nil
}

// Norm returns the Euclidean (L2) norm of s.
func (s State) Norm() float64 {
	return floats.Norm(s, 2)
}

// Distance returns the Euclidean distance between s and other.
func (s State) Distance(other State) float64 {
	return floats.Distance(s, other, 2)
}

// Equal reports whether s and other have identical dimension and
// bitwise-equal components. This is intentionally exact: it is only used
// to detect that a steered state landed exactly on the goal, not as a
// general-purpose tolerance comparison.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
