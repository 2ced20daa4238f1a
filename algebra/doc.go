// Package algebra provides small integer number-theory and combinatorics
// helpers: GCD, LCM, factorials and binomial coefficients.
//
// Errors:
//
//   - ErrUndefinedGCD: GCD(0,0) is algebraically undefined (status 201).
//   - ErrOverflow: a factorial exceeded its integer width (status 501,
//     result 0 — a factorial is never 0, so the result itself is a
//     usable sentinel too).
//   - ErrBinomialOrder: Binomial called with m < n (status 102).
package algebra
