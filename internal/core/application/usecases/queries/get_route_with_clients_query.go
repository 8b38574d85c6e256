package queries

import (
	"errors"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetRouteWithClientsQueryIsNotConstructed = errors.New(
	"GetRouteWithClientsQuery must be created via NewGetRouteWithClientsQuery constructor",
)

// GetRouteWithClientsQuery reads one route together with the clients of the
// orders it currently carries.
type GetRouteWithClientsQuery struct {
	routeID int64

	guard guard.ConstructorGuard
}

func NewGetRouteWithClientsQuery(routeID int64) (GetRouteWithClientsQuery, error) {
	if routeID <= 0 {
		return GetRouteWithClientsQuery{}, errs.NewValidationError("the route id must be a positive integer")
	}
	return GetRouteWithClientsQuery{routeID: routeID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRouteWithClientsQuery) Validate() error {
	return q.guard.Validate(ErrGetRouteWithClientsQueryIsNotConstructed)
}

func (q GetRouteWithClientsQuery) RouteID() int64 {
	return q.routeID
}

// GetRouteWithClientsQueryResponse holds the stored route and the clients
// resolved from its live orders, sorted by client ID.
type GetRouteWithClientsQueryResponse struct {
	Route   *route.Route
	Clients []ports.Client
}
