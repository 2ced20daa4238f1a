// Package diff estimates derivatives of 1-D real functions and finds
// roots with the secant method.
//
// What:
//
//   - Derivative: forward-difference estimate with a process-wide step
//     (default DefaultStep, adjustable via SetStep).
//   - SecantRoot: fixed-iteration secant recurrence seeded with the
//     endpoints of a core.Range.
//
// Both routines are deliberately unguarded: no continuity check, no
// convergence test, no divide-by-zero protection. A zero step or a flat
// secant chord propagates as ±Inf/NaN per IEEE rules — that scope limit
// is the contract, and checked variants are out of scope.
//
// Errors:
//
//   - ErrNegativeStep: SetStep called with a negative step; the stored
//     step is left unchanged (status 601).
//   - ErrZeroIterations: SecantRoot asked for zero iterations
//     (status 102, result 0).
package diff
