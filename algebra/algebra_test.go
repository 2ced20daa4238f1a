package algebra_test

import (
	"testing"

	"github.com/katalvlaran/numkit/algebra"
	"github.com/katalvlaran/numkit/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGCD covers the Euclid cases and the single-zero identities.
func TestGCD(t *testing.T) {
	cases := []struct{ m, n, want uint }{
		{12, 18, 6},
		{18, 12, 6},
		{7, 13, 1},
		{0, 9, 9},
		{9, 0, 9},
		{42, 42, 42},
	}
	for _, tc := range cases {
		got, err := algebra.GCD(tc.m, tc.n)
		require.NoError(t, err, "GCD(%d,%d)", tc.m, tc.n)
		assert.Equal(t, tc.want, got, "GCD(%d,%d)", tc.m, tc.n)
	}
	assert.Equal(t, status.OK, status.Last())
}

// TestGCD_BothZero: GCD(0,0) is undefined — ErrUndefinedGCD, status 201.
func TestGCD_BothZero(t *testing.T) {
	got, err := algebra.GCD(0, 0)
	assert.ErrorIs(t, err, algebra.ErrUndefinedGCD)
	assert.Equal(t, uint(0), got)
	assert.Equal(t, status.InvalidOperation, status.Last())
}

// TestLCM covers the multiple cases including the LCM(0,0)=0 convention.
func TestLCM(t *testing.T) {
	assert.Equal(t, uint(36), algebra.LCM(12, 18))
	assert.Equal(t, uint(91), algebra.LCM(7, 13))
	assert.Equal(t, uint(0), algebra.LCM(0, 5))
	assert.Equal(t, uint(0), algebra.LCM(0, 0), "LCM(0,0) is 0 by convention, not an error")
	assert.Equal(t, status.OK, status.Last())
}

// TestFactorial checks small values and both overflow boundaries.
func TestFactorial(t *testing.T) {
	for _, tc := range []struct {
		x    uint32
		want uint32
	}{{0, 1}, {1, 1}, {5, 120}, {12, 479001600}} {
		got, err := algebra.Factorial(tc.x)
		require.NoError(t, err, "Factorial(%d)", tc.x)
		assert.Equal(t, tc.want, got, "Factorial(%d)", tc.x)
	}

	// 13! = 6227020800 does not fit in uint32.
	got, err := algebra.Factorial(13)
	assert.ErrorIs(t, err, algebra.ErrOverflow)
	assert.Equal(t, uint32(0), got)
	assert.Equal(t, status.Overflow, status.Last())
}

// TestFactorial64: 20! fits in uint64, 21! does not.
func TestFactorial64(t *testing.T) {
	got, err := algebra.Factorial64(20)
	require.NoError(t, err)
	assert.Equal(t, uint64(2432902008176640000), got)

	_, err = algebra.Factorial64(21)
	assert.ErrorIs(t, err, algebra.ErrOverflow)
	assert.Equal(t, status.Overflow, status.Last())
}

// TestBinomial covers Pascal-triangle values, the m < n rejection and
// overflow propagation.
func TestBinomial(t *testing.T) {
	for _, tc := range []struct{ m, n, want uint32 }{
		{5, 2, 10}, {6, 3, 20}, {9, 0, 1}, {9, 9, 1}, {10, 4, 210},
	} {
		got, err := algebra.Binomial(tc.m, tc.n)
		require.NoError(t, err, "Binomial(%d,%d)", tc.m, tc.n)
		assert.Equal(t, tc.want, got, "Binomial(%d,%d)", tc.m, tc.n)
	}

	got, err := algebra.Binomial(3, 5)
	assert.ErrorIs(t, err, algebra.ErrBinomialOrder)
	assert.Equal(t, uint32(0), got)
	assert.Equal(t, status.InvalidParam, status.Last())

	_, err = algebra.Binomial(30, 2) // 30! overflows uint32
	assert.ErrorIs(t, err, algebra.ErrOverflow)
}

// TestBinomial64 spot-checks the wide variant.
func TestBinomial64(t *testing.T) {
	got, err := algebra.Binomial64(20, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(184756), got)

	_, err = algebra.Binomial64(3, 4)
	assert.ErrorIs(t, err, algebra.ErrBinomialOrder)
}
