package integration

import (
	"errors"
	"fmt"
)

// ErrIntegration marks transport and protocol failures talking to an external
// service. Responses that mean "nothing found" are not failures.
var ErrIntegration = errors.New("integration failure")

// Error describes a failed call to an external service.
type Error struct {
	Service string
	Op      string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s service: %s: %v", e.Service, e.Op, e.Cause)
}

// Unwrap exposes both ErrIntegration and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return []error{ErrIntegration, e.Cause}
}
