package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// Order is the part of an external order routes care about.
// ClientID is empty when the order has no client.
type Order struct {
	ID                    string
	ClientID              string
	AssignedTruck         string
	ScheduledDeliveryDate string
	Status                string
}

// OrdersGateway reads orders from the Orders service.
type OrdersGateway interface {
	// OrdersFor returns the orders scheduled for the truck on the date. An
	// unknown pair yields an empty slice, not an error.
	OrdersFor(ctx context.Context, truck route.Truck, date kernel.Date) ([]Order, error)

	// HasOrders reports whether OrdersFor would return at least one order.
	HasOrders(ctx context.Context, truck route.Truck, date kernel.Date) (bool, error)
}
