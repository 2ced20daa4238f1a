package status

import "sync/atomic"

// Code is a library-wide outcome code. The numeric values are fixed and
// stable: they are part of the compatibility contract with flag-checking
// callers and must not be renumbered.
type Code int32

const (
	// OK reports that the last operation completed as documented.
	OK Code = 0

	// BadAlloc reports a failed allocation. Unused on this runtime (Go
	// aborts on allocation failure); kept so the code space stays complete.
	BadAlloc Code = 101

	// InvalidParam reports a rejected argument: negative subinterval count,
	// zero secant iterations, an under-length coefficient slice, m < n in a
	// binomial coefficient.
	InvalidParam Code = 102

	// InvalidOperation reports an algebraically undefined request,
	// e.g. GCD(0,0).
	InvalidOperation Code = 201

	// IndexAboveDegree reports a coefficient lookup past the polynomial's
	// degree. The call still returns a fallback value (the leading
	// coefficient); this code is the only signal that it happened.
	IndexAboveDegree Code = 401

	// Overflow reports a factorial that exceeded its integer width.
	Overflow Code = 501

	// InvalidRange reports a range constructed with max < min.
	InvalidRange Code = 506

	// NegativeStep reports a rejected negative derivative step; the stored
	// step is left unchanged.
	NegativeStep Code = 601
)

// last is the process-wide cell. Last-write-wins across goroutines.
var last atomic.Int32

// Set records c as the outcome of the operation in progress.
// Called by numkit packages; callers normally have no reason to.
func Set(c Code) { last.Store(int32(c)) }

// Last returns the outcome code of the most recent numkit operation that
// sets one. Pure queries (Range.Width, the getters for bins and step) do
// not touch it.
func Last() Code { return Code(last.Load()) }

// Reset clears the cell back to OK.
func Reset() { last.Store(int32(OK)) }

// String names the code for diagnostics.
func (c Code) String() string {
	switch c {
	case OK:
		return "OK"
	case BadAlloc:
		return "BadAlloc"
	case InvalidParam:
		return "InvalidParam"
	case InvalidOperation:
		return "InvalidOperation"
	case IndexAboveDegree:
		return "IndexAboveDegree"
	case Overflow:
		return "Overflow"
	case InvalidRange:
		return "InvalidRange"
	case NegativeStep:
		return "NegativeStep"
	}
	return "Unknown"
}
