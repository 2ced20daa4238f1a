// Package quadrature approximates definite integrals of 1-D real functions
// over a core.Range with fixed-step composite rules.
//
// What:
//
//   - IntegrateBins: left-endpoint rectangle rule driven by a process-wide
//     bin count (default DefaultBins).
//   - IntegrateRect: rectangle rule with an explicit subinterval count.
//     NOTE: for subintervals > 0 this is NOT the textbook composite
//     midpoint rule — see the function comment for the formula it
//     actually computes.
//   - IntegrateTrap: classic composite trapezoidal rule.
//
// Why:
//
//   - Fixed-step rules with no adaptivity or error control: cheap,
//     predictable, and sufficient for smooth integrands at known scales.
//
// Errors:
//
//   - ErrNegativeSubintervals: IntegrateRect/IntegrateTrap called with
//     subintervals < 0 (status 102, result 0).
//
// The bin count is a process-wide cell, last-write-wins across goroutines.
package quadrature
