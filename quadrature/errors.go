package quadrature

import "errors"

// ErrNegativeSubintervals indicates a negative subinterval count passed to
// IntegrateRect or IntegrateTrap.
var ErrNegativeSubintervals = errors.New("quadrature: subintervals must be >= 0")
