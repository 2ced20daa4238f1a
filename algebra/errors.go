package algebra

import "errors"

var (
	// ErrUndefinedGCD indicates GCD(0,0), which has no largest divisor.
	ErrUndefinedGCD = errors.New("algebra: gcd(0,0) is undefined")

	// ErrOverflow indicates a factorial exceeded its integer width.
	ErrOverflow = errors.New("algebra: factorial overflow")

	// ErrBinomialOrder indicates a binomial coefficient with m < n.
	ErrBinomialOrder = errors.New("algebra: binomial coefficient requires m >= n")
)
