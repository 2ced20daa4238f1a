package core

import "github.com/katalvlaran/numkit/status"

// Range is a closed interval [min, max]. The invariant min <= max is
// enforced by New and holds for the lifetime of the value; a Range obtained
// any other way (the zero value included) is the degenerate [0, 0].
type Range struct {
	min, max float64
}

// New returns the validated range [min, max].
// It fails with ErrInvalidRange when max < min (status 506).
// min == max is legal and yields a zero-width range.
func New(min, max float64) (Range, error) {
	if max < min {
		status.Set(status.InvalidRange)
		return Range{}, ErrInvalidRange
	}
	status.Set(status.OK)
	return Range{min: min, max: max}, nil
}

// Min returns the lower bound.
func (r Range) Min() float64 { return r.min }

// Max returns the upper bound.
func (r Range) Max() float64 { return r.max }

// Width returns max - min. Pure query: it does not touch the status cell.
func (r Range) Width() float64 { return r.max - r.min }
