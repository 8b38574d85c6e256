// Package errs provides standardized error types for the logistics application.
//
// Two families live here:
//   - parameter errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError) raised by constructors
//     and repositories, each unwrapping to a sentinel such as ErrValueIsRequired;
//   - kinded errors (Error with KindValidation, KindBusinessLogic or KindNotFound)
//     returned by use cases and mapped to status codes by the HTTP boundary.
//
// Use errors.Is with the sentinels, or KindOf, to classify a failure.
package errs
