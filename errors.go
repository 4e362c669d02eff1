package predictor

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind returned by the predictor. Every cause below wraps it
// so callers can either match the kind or the specific cause.
var ErrInvalidInput = errors.New("invalid input")

var (
	ErrEmptyVector         = fmt.Errorf("%w, input vector cannot be empty", ErrInvalidInput)
	ErrEmptyInput          = fmt.Errorf("%w, input data cannot be empty", ErrInvalidInput)
	ErrNonPositiveHorizon  = fmt.Errorf("%w, horizon must be greater than 0", ErrInvalidInput)
	ErrCannotInferInterval = fmt.Errorf("%w, cannot infer interval from historical time", ErrInvalidInput)
	ErrNoResults           = errors.New("no prediction results to plot")
)
