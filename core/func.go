package core

// Func1D maps one real number to one real number. The quadrature and diff
// engines evaluate these; they never retain them between calls.
type Func1D func(x float64) float64

// Func2D maps two real numbers to one.
type Func2D func(x, y float64) float64

// Func3D maps three real numbers to one.
type Func3D func(x, y, z float64) float64

// FuncND maps a vector of real numbers to one.
type FuncND func(v []float64) float64

// Delta is the Kronecker delta: 1 if i == j, 0 otherwise.
func Delta(i, j int) int {
	if i == j {
		return 1
	}
	return 0
}
