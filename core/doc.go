// Package core defines the leaf types shared by every numkit package:
// the real-valued function signatures and the validated Range interval.
//
// What:
//
//   - Func1D…FuncND: plain function types mapping reals to a real. numkit
//     never owns or stores these; callers supply them per call and the
//     engines only invoke them.
//   - Range: immutable closed interval [min, max], validated once at
//     construction and never re-checked afterwards.
//
// Errors:
//
//   - ErrInvalidRange: New was called with max < min (status 506).
package core
