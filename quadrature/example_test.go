package quadrature_test

import (
	"fmt"

	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/quadrature"
)

// ExampleIntegrateTrap integrates f(x) = x over [0, 10] with the plain
// two-point trapezoid (subintervals = 0): 10·(0+10)/2 = 50.
func ExampleIntegrateTrap() {
	r, err := core.New(0, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	area, err := quadrature.IntegrateTrap(func(x float64) float64 { return x }, r, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("area=%g\n", area)
	// Output:
	// area=50
}

// ExampleIntegrateTrap_composite integrates x² over [0, 3] with three
// panels; the trapezoidal rule overestimates the true value 9.
func ExampleIntegrateTrap_composite() {
	r, _ := core.New(0, 3)

	area, _ := quadrature.IntegrateTrap(func(x float64) float64 { return x * x }, r, 3)
	fmt.Printf("area=%g\n", area)
	// Output:
	// area=9.5
}
