package diff

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/status"
)

// DefaultStep is the initial process-wide forward-difference step.
const DefaultStep = 1e-8

// step holds the current dx as IEEE bits. Last-write-wins across goroutines.
var step atomic.Uint64

func init() { step.Store(math.Float64bits(DefaultStep)) }

// SetStep replaces the process-wide forward-difference step. A negative dx
// fails with ErrNegativeStep (status 601) and leaves the stored step
// unchanged. dx == 0 is accepted; Derivative will then divide by zero and
// return ±Inf/NaN, which is the caller's responsibility.
func SetStep(dx float64) error {
	if dx < 0 {
		status.Set(status.NegativeStep)
		return ErrNegativeStep
	}
	step.Store(math.Float64bits(dx))
	status.Set(status.OK)
	return nil
}

// Step returns the current forward-difference step. Pure query.
func Step() float64 { return math.Float64frombits(step.Load()) }

// Derivative estimates f'(x) with the forward difference
// (f(x+dx) - f(x)) / dx at the process-wide step. No smoothness or
// step-size validation is performed. Sets status OK.
func Derivative(f core.Func1D, x float64) float64 {
	dx := Step()
	status.Set(status.OK)
	return (f(x+dx) - f(x)) / dx
}

// SecantRoot runs the secant recurrence for exactly iterations steps,
// seeded with x0 = r.Min(), x1 = r.Max():
//
//	x2 = x1 - f(x1)·(x1-x0) / (f(x1)-f(x0))
//
// and returns the final x2. iterations == 0 fails with ErrZeroIterations
// (status 102, result 0). There is no convergence test and no guard
// against a flat chord (f(x1) == f(x0) divides by zero); seeding a range
// that brackets a root and choosing enough iterations is the caller's job.
func SecantRoot(f core.Func1D, r core.Range, iterations uint) (float64, error) {
	if iterations == 0 {
		status.Set(status.InvalidParam)
		return 0, ErrZeroIterations
	}

	x0, x1 := r.Min(), r.Max()
	var x2 float64
	for i := uint(0); i < iterations; i++ {
		x2 = x1 - f(x1)*(x1-x0)/(f(x1)-f(x0))
		x0 = x1
		x1 = x2
	}

	status.Set(status.OK)
	return x2, nil
}
