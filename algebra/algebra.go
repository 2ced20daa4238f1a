package algebra

import "github.com/katalvlaran/numkit/status"

// GCD computes the greatest common divisor by Euclid's algorithm.
// GCD(0,n) = n and GCD(m,0) = m; GCD(0,0) is undefined and fails with
// ErrUndefinedGCD (status 201, result 0).
func GCD(m, n uint) (uint, error) {
	if m == 0 && n == 0 {
		status.Set(status.InvalidOperation)
		return 0, ErrUndefinedGCD
	}
	status.Set(status.OK)

	for n != 0 {
		m, n = n, m%n
	}
	return m, nil
}

// LCM computes the least common multiple as m·n / GCD(m,n).
// LCM(0,0) = 0 by convention and is not an error. The product m·n is not
// checked for overflow, matching the scale this helper is meant for.
func LCM(m, n uint) uint {
	status.Set(status.OK)
	if m == 0 && n == 0 {
		return 0
	}

	g, _ := GCD(m, n) // not both zero here
	return m * n / g
}
