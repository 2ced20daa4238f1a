// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/numkit/core"
	"github.com/katalvlaran/numkit/polynomial"
)

// ExamplePolynomial builds p(x) = 1 - 2x + 3x², differentiates it and
// integrates it over [0, 2] in closed form. String output keeps one dense
// term per coefficient and ends with a separator space, trimmed here.
func ExamplePolynomial() {
	p, err := polynomial.New(2, []float64{1, -2, 3})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("p(x)  =", strings.TrimSpace(p.String()))
	fmt.Println("p'(x) =", strings.TrimSpace(p.Derivative().String()))
	fmt.Println("p(2)  =", p.Evaluate(2))

	r, err := core.New(0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("∫p    =", p.Integrate(r))
	// Output:
	// p(x)  = + 1x^0 - 2x^1 + 3x^2
	// p'(x) = - 2x^0 + 6x^1
	// p(2)  = 9
	// ∫p    = 6
}

// ExamplePolynomial_Func passes a polynomial where a generic 1-D function
// is expected; each adapter stays bound to its own polynomial.
func ExamplePolynomial_Func() {
	p, _ := polynomial.New(1, []float64{0, 1}) // x
	q, _ := polynomial.New(0, []float64{7})    // 7

	fp, fq := p.Func(), q.Func()
	fmt.Println(fp(3), fq(3), fp(5))
	// Output:
	// 3 7 5
}
