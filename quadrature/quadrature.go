package quadrature

import (
	"sync/atomic"

	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/status"
)

// DefaultBins is the initial process-wide bin count for IntegrateBins.
const DefaultBins uint64 = 1000

var nbins atomic.Uint64

func init() { nbins.Store(DefaultBins) }

// SetBins replaces the process-wide bin count used by IntegrateBins.
// Last-write-wins across goroutines. Sets status OK.
func SetBins(n uint64) {
	status.Set(status.OK)
	nbins.Store(n)
}

// Bins returns the current process-wide bin count. Pure query.
func Bins() uint64 { return nbins.Load() }

// IntegrateBins approximates the integral of f over r with the
// left-endpoint rectangle rule: step = r.Width()/Bins(), accumulating
// step*f(x) for x = r.Min(), r.Min()+step, ... while x <= r.Max().
//
// The loop terminates on the floating-point comparison x <= r.Max(), so
// step accumulation rounding can run it Bins()±1 times rather than exactly
// Bins() times. That termination rule is part of the contract; callers
// needing an exact panel count should use IntegrateTrap with an explicit
// subinterval count.
//
// Sets status OK.
func IntegrateBins(f core.Func1D, r core.Range) float64 {
	n := Bins()
	step := r.Width() / float64(n)

	var area float64
	for x := r.Min(); x <= r.Max(); x += step {
		area += step * f(x)
	}

	status.Set(status.OK)
	return area
}

// IntegrateRect approximates the integral of f over r with a rectangle
// rule. subintervals < 0 fails with ErrNegativeSubintervals (status 102,
// result 0, mirrored as the error return). subintervals == 0 is the single
// midpoint rectangle r.Width() * f(midpoint).
//
// For subintervals = n > 0 the rule computed is, with head = r.Width()/n:
//
//	head * f( (r.Min()+r.Max())/2 + Σ_{k=1..n-1} (r.Min() + k*head) )
//
// i.e. f is evaluated ONCE, at the full-range midpoint plus the sum of the
// interior panel left edges. This is not the textbook composite midpoint
// rule (which would average n samples); the aggregate-argument form is the
// established behavior of this rule and is kept as-is.
func IntegrateRect(f core.Func1D, r core.Range, subintervals int) (float64, error) {
	if subintervals < 0 {
		status.Set(status.InvalidParam)
		return 0, ErrNegativeSubintervals
	}
	status.Set(status.OK)

	head := r.Width()
	body := r.Min() + r.Max()

	if subintervals == 0 {
		return head * f(body/2), nil
	}

	head /= float64(subintervals)

	var mid float64
	for k := 1; k <= subintervals-1; k++ {
		mid += r.Min() + float64(k)*head
	}

	return head * f(body/2+mid), nil
}

// IntegrateTrap approximates the integral of f over r with the composite
// trapezoidal rule. subintervals < 0 fails with ErrNegativeSubintervals
// (status 102, result 0). subintervals == 0 is the plain 2-point
// trapezoid r.Width() * (f(min)+f(max))/2; otherwise, with
// head = r.Width()/subintervals:
//
//	head * ( (f(min)+f(max))/2 + Σ_{k=1..subintervals-1} f(min + k*head) )
func IntegrateTrap(f core.Func1D, r core.Range, subintervals int) (float64, error) {
	if subintervals < 0 {
		status.Set(status.InvalidParam)
		return 0, ErrNegativeSubintervals
	}
	status.Set(status.OK)

	head := r.Width()
	body := f(r.Min()) + f(r.Max())

	if subintervals == 0 {
		return head * body / 2, nil
	}

	head /= float64(subintervals)

	var mid float64
	for k := 1; k <= subintervals-1; k++ {
		mid += f(r.Min() + float64(k)*head)
	}

	return head * (body/2 + mid), nil
}
