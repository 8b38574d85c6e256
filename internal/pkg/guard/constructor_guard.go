// Package guard provides ConstructorGuard, a marker that tells a value built
// by its constructor apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero-value guard
// when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities that must
// only be created through their New* functions.
//
// Example:
//
//	var ErrCreateRouteCommandIsNotConstructed = errors.New(
//	    "CreateRouteCommand must be created via NewCreateRouteCommand constructor",
//	)
//
//	type CreateRouteCommand struct {
//	    assignedTruck string
//	    guard         guard.ConstructorGuard
//	}
//
//	func (c CreateRouteCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
