package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route was not created through
	// NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrRouteAlreadyExists is the conflict a store reports when an insert would
	// break the (truck, delivery date) or route code uniqueness.
	ErrRouteAlreadyExists = errors.New("route already exists")
)

const codePrefix = "ROU-"

// Route assigns one truck to one delivery date.
//
// Route follows these invariants:
//   - Code, truck and delivery date are required and never change
//   - Truck is part of the fleet whitelist
//   - A new route carries at least one order; OrdersCount is a snapshot taken
//     at creation and is not re-synced
//   - ID and timestamps are owned by the store
type Route struct {
	id           int64
	code         string
	truck        Truck
	deliveryDate kernel.Date
	ordersCount  int
	createdAt    time.Time
	updatedAt    time.Time

	isConstructed bool
}

// GenerateRouteCode formats a sequence number as ROU-0001. Numbers above
// 9999 keep all their digits.
func GenerateRouteCode(sequence int64) string {
	return fmt.Sprintf("%s%04d", codePrefix, sequence)
}

// NewRoute creates a route that has not been stored yet.
//
// Example:
//
//	date, _ := kernel.ParseDate("2025-12-26")
//	r, err := route.NewRoute(route.GenerateRouteCode(1), "CAM-001", date, 3)
func NewRoute(code string, truck Truck, deliveryDate kernel.Date, ordersCount int) (*Route, error) {
	now := time.Now().UTC()
	r := &Route{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setCode(code),
		r.setTruck(truck),
		r.setDeliveryDate(deliveryDate),
		r.setOrdersCount(ordersCount, 1),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute rebuilds a stored route. A stored route may report zero orders.
func RestoreRoute(
	id int64,
	code string,
	truck Truck,
	deliveryDate kernel.Date,
	ordersCount int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Route, error) {
	r := &Route{
		id:            id,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setCode(code),
		r.setTruck(truck),
		r.setDeliveryDate(deliveryDate),
		r.setOrdersCount(ordersCount, 0),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Route was built by a constructor.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned identifier, 0 before the route is stored.
func (r *Route) ID() int64 {
	return r.id
}

func (r *Route) Code() string {
	return r.code
}

func (r *Route) Truck() Truck {
	return r.truck
}

func (r *Route) DeliveryDate() kernel.Date {
	return r.deliveryDate
}

func (r *Route) OrdersCount() int {
	return r.ordersCount
}

func (r *Route) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Route) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Route) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("route_code")
	}
	r.code = code
	return nil
}

func (r *Route) setTruck(truck Truck) error {
	if err := truck.Validate(); err != nil {
		return err
	}
	r.truck = truck
	return nil
}

func (r *Route) setDeliveryDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	r.deliveryDate = date
	return nil
}

func (r *Route) setOrdersCount(count, minimum int) error {
	if count < minimum {
		return errs.NewValueIsInvalidErrorWithCause("orders_count",
			fmt.Errorf("%d is lower than %d", count, minimum))
	}
	r.ordersCount = count
	return nil
}
