package algebra

import (
	"math"

	"github.com/katalvlaran/numkit/status"
)

// Factorial computes x! for uint32, iteratively. On overflow it fails
// with ErrOverflow (status 501) and returns 0, which no real factorial
// ever is. 0! = 1.
func Factorial(x uint32) (uint32, error) {
	var res uint32 = 1
	for i := uint32(2); i <= x; i++ {
		if res > math.MaxUint32/i {
			status.Set(status.Overflow)
			return 0, ErrOverflow
		}
		res *= i
	}

	status.Set(status.OK)
	return res, nil
}

// Factorial64 is Factorial at uint64 width (overflows past 20!).
func Factorial64(x uint64) (uint64, error) {
	var res uint64 = 1
	for i := uint64(2); i <= x; i++ {
		if res > math.MaxUint64/i {
			status.Set(status.Overflow)
			return 0, ErrOverflow
		}
		res *= i
	}

	status.Set(status.OK)
	return res, nil
}

// Binomial computes the binomial coefficient C(m, n) = m! / (n!·(m-n)!).
// m < n fails with ErrBinomialOrder (status 102, result 0); a factorial
// overflow along the way propagates as ErrOverflow.
func Binomial(m, n uint32) (uint32, error) {
	if m < n {
		status.Set(status.InvalidParam)
		return 0, ErrBinomialOrder
	}

	mf, err := Factorial(m)
	if err != nil {
		return 0, err
	}
	nf, err := Factorial(n)
	if err != nil {
		return 0, err
	}
	df, err := Factorial(m - n)
	if err != nil {
		return 0, err
	}

	status.Set(status.OK)
	return mf / (nf * df), nil
}

// Binomial64 is Binomial at uint64 width.
func Binomial64(m, n uint64) (uint64, error) {
	if m < n {
		status.Set(status.InvalidParam)
		return 0, ErrBinomialOrder
	}

	mf, err := Factorial64(m)
	if err != nil {
		return 0, err
	}
	nf, err := Factorial64(n)
	if err != nil {
		return 0, err
	}
	df, err := Factorial64(m - n)
	if err != nil {
		return 0, err
	}

	status.Set(status.OK)
	return mf / (nf * df), nil
}
