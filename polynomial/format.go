// SPDX-License-Identifier: MIT

package polynomial

import (
	"fmt"
	"math"
	"strings"
)

// Format renders p with one term per coefficient in ascending power
// order, each prefixed by its sign: "± |c|x^k " with verb applied to the
// coefficient magnitude, e.g. Format("%g") on 1 - 2x + 3x² yields
// "+ 1x^0 - 2x^1 + 3x^2 ". Zero coefficients are rendered too — the
// output mirrors the dense storage, trailing space included.
func (p *Polynomial) Format(verb string) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	for k := uint(0); k <= p.deg; k++ {
		if p.coeffs[k] < 0 {
			b.WriteString("- ")
		} else {
			b.WriteString("+ ")
		}
		fmt.Fprintf(&b, verb, math.Abs(p.coeffs[k]))
		fmt.Fprintf(&b, "x^%d ", k)
	}
	return b.String()
}

// String renders p with the default "%g" coefficient verb.
func (p *Polynomial) String() string { return p.Format("%g") }
