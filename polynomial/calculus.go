// SPDX-License-Identifier: MIT

package polynomial

import (
	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/status"
)

// Derivative returns d/dx p as a new polynomial via the power rule:
// result[k] = p[k+1]·(k+1) for k = 0..deg-1. The derivative of a
// degree-0 polynomial is the degree-0 zero polynomial, not an empty one.
func (p *Polynomial) Derivative() *Polynomial {
	if p == nil {
		status.Set(status.InvalidParam)
		return nil
	}

	if p.deg == 0 {
		d, err := New(0, []float64{0})
		if err != nil {
			return nil // status set by New
		}
		status.Set(status.OK)
		return d
	}

	coeffs := make([]float64, p.deg)
	for k := uint(0); k <= p.deg-1; k++ {
		coeffs[k] = p.coeffs[k+1] * float64(k+1)
	}

	d, err := New(p.deg-1, coeffs)
	if err != nil {
		return nil // status set by New
	}

	status.Set(status.OK)
	return d
}

// Antiderivative returns ∫p dx with the given integration constant as a
// new polynomial of degree deg+1: result[0] = constant,
// result[k+1] = p[k]/(k+1) for k = 0..deg.
func (p *Polynomial) Antiderivative(constant float64) *Polynomial {
	if p == nil {
		status.Set(status.InvalidParam)
		return nil
	}

	coeffs := make([]float64, p.deg+2)
	coeffs[0] = constant
	for k := uint(0); k <= p.deg; k++ {
		coeffs[k+1] = p.coeffs[k] / float64(k+1)
	}

	a, err := New(p.deg+1, coeffs)
	if err != nil {
		return nil // status set by New
	}

	status.Set(status.OK)
	return a
}

// Integrate computes the definite integral of p over r in closed form:
// the antiderivative with constant 0, evaluated at both endpoints. Exact
// up to float rounding — no quadrature is involved.
func (p *Polynomial) Integrate(r core.Range) float64 {
	if p == nil {
		status.Set(status.InvalidParam)
		return 0
	}

	anti := p.Antiderivative(0)
	if anti == nil {
		return 0 // status set by Antiderivative
	}

	integral := anti.Evaluate(r.Max()) - anti.Evaluate(r.Min())

	status.Set(status.OK)
	return integral
}
