package commands

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to assign a route to a truck for a
// delivery date.
//
// Example:
//
//	cmd, err := NewCreateRouteCommand("CAM-001", "2025-12-26")
//	if err != nil {
//	    return err // errs.KindValidation
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	truck        route.Truck
	deliveryDate kernel.Date

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand checks the raw input in order and returns the first
// failure as a validation error: missing truck, missing date, truck outside
// the fleet, unparsable date. Whether the date is far enough ahead is decided
// by the handler, which owns the clock.
func NewCreateRouteCommand(assignedTruck, deliveryDate string) (CreateRouteCommand, error) {
	if assignedTruck == "" {
		return CreateRouteCommand{}, errs.NewValidationError("the 'assigned_truck' field is required")
	}
	if deliveryDate == "" {
		return CreateRouteCommand{}, errs.NewValidationError("the 'delivery_date' field is required")
	}

	truck, err := route.ParseTruck(assignedTruck)
	if err != nil {
		return CreateRouteCommand{}, errs.NewValidationError(fmt.Sprintf(
			"the truck '%s' is not valid; allowed trucks: %s",
			strings.TrimSpace(assignedTruck), route.AllowedTrucksList()))
	}

	date, err := kernel.ParseDate(deliveryDate)
	if err != nil {
		return CreateRouteCommand{}, errs.NewValidationError(
			"the 'delivery_date' format must be a valid ISO 8601 date (YYYY-MM-DD)")
	}

	return CreateRouteCommand{
		truck:        truck,
		deliveryDate: date,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// NewCreateRouteCommandForDate is NewCreateRouteCommand for callers that
// already hold a parsed date.
func NewCreateRouteCommandForDate(assignedTruck string, deliveryDate kernel.Date) (CreateRouteCommand, error) {
	if deliveryDate.Validate() != nil {
		return NewCreateRouteCommand(assignedTruck, "")
	}
	return NewCreateRouteCommand(assignedTruck, deliveryDate.String())
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRouteCommandIsNotConstructed if validation fails.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

func (c CreateRouteCommand) Truck() route.Truck {
	return c.truck
}

func (c CreateRouteCommand) DeliveryDate() kernel.Date {
	return c.deliveryDate
}
