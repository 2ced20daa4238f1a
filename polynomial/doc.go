// SPDX-License-Identifier: MIT

// Package polynomial implements a dense-coefficient univariate polynomial
// over float64, with exact (closed-form) calculus.
//
// What:
//
//   - Polynomial stores degree + 1 coefficients; the entry at index k
//     multiplies x^k. The degree is declared, not derived: a leading zero
//     does not shrink it, and no normalization ever runs.
//   - Evaluate, Derivative, Antiderivative, Integrate — the calculus here
//     is the power rule on coefficients, exact up to float rounding, and
//     never touches the quadrature package.
//   - Compare, Clone, Func (adapter to core.Func1D), String/Format.
//
// Ownership:
//
//   - New copies the caller's slice; every transformation allocates a
//     fresh Polynomial and never mutates its input.
//
// Errors:
//
//   - ErrShortCoefficients: New was given fewer than degree+1 entries
//     (status 102).
//   - Coefficient past the degree is NOT an error: it returns the leading
//     coefficient and records status 401 — a degraded fallback the caller
//     detects only through the status channel.
//
// Methods on a nil *Polynomial do not panic: they record status 102 and
// return a zero value (or nil), mirroring the rest of the library's
// degrade-and-flag policy.
package polynomial
