package diff

import "errors"

var (
	// ErrNegativeStep indicates SetStep was called with a negative step.
	ErrNegativeStep = errors.New("diff: step must be >= 0")

	// ErrZeroIterations indicates SecantRoot was asked for zero iterations.
	ErrZeroIterations = errors.New("diff: iterations must be > 0")
)
