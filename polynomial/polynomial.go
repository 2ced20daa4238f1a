// SPDX-License-Identifier: MIT

package polynomial

import (
	"math"

	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/status"
)

// Polynomial is Σ c_k·x^k for k = 0..deg, stored densely: coeffs[k] is
// c_k and len(coeffs) == deg+1 always. Values are immutable after
// construction; transformations return fresh instances.
type Polynomial struct {
	deg    uint
	coeffs []float64
}

// New builds a polynomial of the given degree from the first degree+1
// entries of coeffs, copying them; the caller's slice stays independent.
// Fails with ErrShortCoefficients (status 102) when coeffs has fewer than
// degree+1 entries. A zero leading coefficient is kept as supplied — the
// declared degree stands.
func New(degree uint, coeffs []float64) (*Polynomial, error) {
	if uint64(len(coeffs)) <= uint64(degree) {
		status.Set(status.InvalidParam)
		return nil, ErrShortCoefficients
	}

	c := make([]float64, degree+1)
	copy(c, coeffs[:degree+1])

	status.Set(status.OK)
	return &Polynomial{deg: degree, coeffs: c}, nil
}

// Degree returns the declared degree. Pure query.
func (p *Polynomial) Degree() uint {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}
	return p.deg
}

// Coefficient returns the multiplier of x^index. An index past the degree
// is degraded, not fatal: the leading coefficient comes back and status
// 401 records that it happened. On a valid index status is OK.
func (p *Polynomial) Coefficient(index uint) float64 {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}
	if index > p.deg {
		status.Set(status.IndexAboveDegree)
		return p.coeffs[p.deg]
	}

	status.Set(status.OK)
	return p.coeffs[index]
}

// Leading returns the coefficient at the degree position.
func (p *Polynomial) Leading() float64 {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}
	status.Set(status.OK)
	return p.coeffs[p.deg]
}

// Trailing returns the constant term.
func (p *Polynomial) Trailing() float64 {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}
	status.Set(status.OK)
	return p.coeffs[0]
}

// IsConstant reports degree == 0.
func (p *Polynomial) IsConstant() bool {
	if p == nil {
		status.Set(status.InvalidParam)
		return false
	}
	status.Set(status.OK)
	return p.deg == 0
}

// Evaluate computes Σ c_k·x^k as a direct power sum in ascending k.
// The term order is part of the contract: results are bit-identical to
// the ascending accumulation, so callers may compare them exactly.
// (Horner's scheme is algebraically equal but rounds differently.)
func (p *Polynomial) Evaluate(x float64) float64 {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}

	var res float64
	for k := uint(0); k <= p.deg; k++ {
		res += p.coeffs[k] * math.Pow(x, float64(k))
	}

	status.Set(status.OK)
	return res
}

// Compare orders p against q:
//
//   - differing degrees: the signed difference int(p.deg) - int(q.deg);
//   - equal degrees: deg+1-i at the first index i (scanning from 0) where
//     the coefficients differ as exact floats;
//   - 0 only when degrees match and every coefficient is identical.
//
// No epsilon is applied anywhere — two polynomials a rounding step apart
// compare unequal.
func (p *Polynomial) Compare(q *Polynomial) int {
	if p == nil || q == nil {
		status.Set(status.InvalidParam)
		return 0
	}
	status.Set(status.OK)

	if p.deg != q.deg {
		return int(p.deg) - int(q.deg)
	}

	for i := uint(0); i <= p.deg; i++ {
		if p.coeffs[i] != q.coeffs[i] {
			return int(p.deg) + 1 - int(i)
		}
	}

	return 0
}

// Clone returns a deep copy with independent coefficient storage.
func (p *Polynomial) Clone() *Polynomial {
	if p == nil {
		status.Set(status.InvalidParam)
		return nil
	}

	cp, err := New(p.deg, p.coeffs)
	if err != nil {
		return nil // status set by New
	}

	status.Set(status.OK)
	return cp
}

// Func adapts p to the generic 1-D function capability. Each call returns
// an independent closure bound to this polynomial, so adapters from
// different polynomials coexist safely and may outlive each other.
func (p *Polynomial) Func() core.Func1D {
	if p == nil {
		status.Set(status.InvalidParam)
		return nil
	}

	status.Set(status.OK)
	return func(x float64) float64 { return p.Evaluate(x) }
}
