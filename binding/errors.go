package binding

import (
	"errors"
	"fmt"

	"github.com/aouyang1/go-predictor"
)

// ErrorType names the class of error raised on the host side of a call.
type ErrorType string

const (
	ValueError     ErrorType = "ValueError"
	TypeError      ErrorType = "TypeError"
	AttributeError ErrorType = "AttributeError"
	SyntaxError    ErrorType = "SyntaxError"
	RuntimeError   ErrorType = "RuntimeError"
)

var (
	ErrDuplicateFunction = errors.New("function already registered")
	ErrInvalidFunction   = errors.New("function requires a name and an implementation")
)

// HostError is an error translated for the host. Type selects the exception class the host raises
// and Message is the text it carries.
type HostError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *HostError) Unwrap() error {
	return e.Err
}

func newHostError(typ ErrorType, err error) *HostError {
	return &HostError{Type: typ, Message: err.Error(), Err: err}
}

func typeErrorf(format string, a ...any) *HostError {
	return newHostError(TypeError, fmt.Errorf(format, a...))
}

func valueErrorf(format string, a ...any) *HostError {
	return newHostError(ValueError, fmt.Errorf(format, a...))
}

// translateError maps an error returned by a native function into a HostError. Predictor input
// errors become ValueErrors.
func translateError(err error) *HostError {
	var hostErr *HostError
	if errors.As(err, &hostErr) {
		return hostErr
	}
	if errors.Is(err, predictor.ErrInvalidInput) {
		return newHostError(ValueError, err)
	}
	return newHostError(RuntimeError, err)
}
