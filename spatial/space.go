package spatial

import "github.com/pkg/errors"

// Bound is an inclusive per-dimension range [Low, High], with Low <= High.
type Bound struct {
	Low, High float64
}

// Contains reports whether v falls within the bound, inclusive of its edges.
func (b Bound) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// Space is the ordered sequence of per-dimension Bounds a planner samples
// within. Space is immutable once constructed.
type Space struct {
	bounds []Bound
}

// NewSpace validates and constructs a Space from the given bounds. Every
// bound must satisfy Low <= High.
func NewSpace(bounds ...Bound) (*Space, error) {
	if len(bounds) == 0 {
		return nil, errors.Wrap(ErrInvalidDim, "spatial: NewSpace requires at least one dimension")
	}
	for i, b := range bounds {
		if b.Low > b.High {
			return nil, errors.Wrapf(ErrInvalidArg, "spatial: bound %d has Low %v > High %v", i, b.Low, b.High)
		}
	}
	cp := make([]Bound, len(bounds))
	copy(cp, bounds)
	return &Space{bounds: cp}, nil
}

// Dim returns the dimensionality D of the space.
func (sp *Space) Dim() int {
	return len(sp.bounds)
}

// Bound returns the 0-indexed i'th dimension's bound.
func (sp *Space) Bound(i int) (Bound, error) {
	if i < 0 || i >= len(sp.bounds) {
		return Bound{}, errors.Wrapf(ErrInvalidArg, "spatial: dimension index %d out of range [0,%d)", i, len(sp.bounds))
	}
	return sp.bounds[i], nil
}

// Contains reports whether every component of s falls within the
// corresponding dimension's bound. s must have the same dimension as sp.
func (sp *Space) Contains(s State) bool {
	if s.Dim() != sp.Dim() {
		return false
	}
	for i, v := range s {
		if !sp.bounds[i].Contains(v) {
			return false
		}
	}
	return true
}
