// Package ports defines the contracts between the route use cases and the
// infrastructure: the route store, its unit of work and the two external
// services routes depend on.
package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteFilter narrows listing and counting. Empty fields do not filter.
// RouteCode and AssignedTruck match case-insensitive substrings; DeliveryDate
// matches exactly.
type RouteFilter struct {
	RouteCode     string
	AssignedTruck string
	DeliveryDate  *kernel.Date
}

// RouteRepository defines the persistence contract for Route aggregates.
type RouteRepository interface {
	// Add inserts a new route and returns it with the store-assigned ID and
	// timestamps. A uniqueness conflict is reported as route.ErrRouteAlreadyExists.
	Add(ctx context.Context, r *route.Route) (*route.Route, error)

	// Get returns errs.ObjectNotFoundError when no route has the given ID.
	Get(ctx context.Context, id int64) (*route.Route, error)

	// FindByTruckAndDate returns errs.ObjectNotFoundError when the truck is free
	// on that date.
	FindByTruckAndDate(ctx context.Context, truck route.Truck, date kernel.Date) (*route.Route, error)

	// ListPaged returns at most limit routes after skipping offset, ordered by
	// delivery date descending.
	ListPaged(ctx context.Context, limit, offset int, filter RouteFilter) ([]*route.Route, error)

	Count(ctx context.Context, filter RouteFilter) (int64, error)

	// NextSequenceNumber returns max(id)+1, or 1 for an empty store. Callers
	// hold the creation lock while using it.
	NextSequenceNumber(ctx context.Context) (int64, error)

	// DeleteAll removes every route in one statement and returns how many rows
	// were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
