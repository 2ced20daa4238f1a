package core

import "errors"

// ErrInvalidRange indicates a range constructed with max < min.
var ErrInvalidRange = errors.New("core: invalid range: max < min")
