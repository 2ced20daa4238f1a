// Package numkit is a compact numerical toolbox: polynomials with exact
// coefficient calculus, fixed-step quadrature, finite-difference
// derivatives, secant root-finding and integer combinatorics.
//
// 🚀 What is numkit?
//
//	A small, pure-Go library that brings together:
//		• Polynomials: dense coefficients, evaluate, differentiate,
//		  antiderivative, closed-form definite integrals
//		• Quadrature: bin-sum, rectangle and trapezoidal rules over
//		  validated ranges
//		• Diff: forward-difference derivatives & secant root finder
//		• Algebra: GCD, LCM, factorials, binomial coefficients
//		• Status: the legacy last-outcome code channel
//
// ✨ Why choose numkit?
//
//   - Minimal API, clear naming, typed sentinel errors via errors.Is
//   - Deterministic: fixed-step rules, documented term order, no hidden
//     adaptivity
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under five subpackages:
//
//	core/       — Range interval & the Func1D…FuncND function types
//	polynomial/ — the dense-coefficient Polynomial and its calculus
//	quadrature/ — bin-sum, rectangle & trapezoid integration rules
//	diff/       — derivative estimation & secant root-finding
//	algebra/    — GCD/LCM, factorials, binomial coefficients
//	status/     — process-wide outcome codes for flag-checking callers
//
// Quick taste:
//
//	p, _ := polynomial.New(2, []float64{1, -2, 3}) // 1 - 2x + 3x²
//	r, _ := core.New(0, 2)
//	fmt.Println(p.Integrate(r)) // 6 — closed form, no quadrature
//
//	go get github.com/katalvlaran/numkit
package numkit
