package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure at the application boundary.
type Kind int

const (
	KindUnknown Kind = iota

	// KindValidation marks malformed, missing or out-of-range client input.
	KindValidation

	// KindBusinessLogic marks valid input that conflicts with domain state,
	// or an unexpected collaborator failure wrapped by a use case.
	KindBusinessLogic

	// KindNotFound is a business-logic failure for a missing aggregate.
	KindNotFound
)

var (
	ErrValidation    = errors.New("validation error")
	ErrBusinessLogic = errors.New("business logic error")
	ErrNotFound      = errors.New("not found")
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindBusinessLogic:
		return "BusinessLogic"
	case KindNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// Error is a failure tagged with a Kind. Message is the text shown to callers;
// Cause, when set, is appended to it and reachable through errors.Unwrap.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewValidationErrorWithCause(message string, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Cause: cause}
}

func NewBusinessLogicError(message string) *Error {
	return &Error{Kind: KindBusinessLogic, Message: message}
}

func NewBusinessLogicErrorWithCause(message string, cause error) *Error {
	return &Error{Kind: KindBusinessLogic, Message: message, Cause: cause}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewNotFoundErrorWithCause(message string, cause error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches the sentinel of the error's kind. A NotFound error also
// matches ErrBusinessLogic.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrValidation:
		return e.Kind == KindValidation
	case ErrBusinessLogic:
		return e.Kind == KindBusinessLogic || e.Kind == KindNotFound
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKinded reports whether err already carries a Kind and must not be rewrapped.
func IsKinded(err error) bool {
	return KindOf(err) != KindUnknown
}
