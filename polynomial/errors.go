// SPDX-License-Identifier: MIT

package polynomial

import "errors"

// ErrShortCoefficients indicates New was given fewer than degree+1
// coefficients.
var ErrShortCoefficients = errors.New("polynomial: coefficient slice shorter than degree+1")
