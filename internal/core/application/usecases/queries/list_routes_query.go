package queries

import (
	"errors"
	"math"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	MinPerPage     = 1
	MaxPerPage     = 100
	DefaultPerPage = 10
)

var ErrListRoutesQueryIsNotConstructed = errors.New(
	"ListRoutesQuery must be created via NewListRoutesQuery constructor",
)

// ListRoutesQuery selects one page of routes.
//
// Example:
//
//	query, err := NewListRoutesQuery(2, 10, "ROU-00", "", "2025-12-26")
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListRoutesQuery struct { //nolint:recvcheck //using for validation
	page    int
	perPage int
	filter  ports.RouteFilter

	guard guard.ConstructorGuard
}

// NewListRoutesQuery validates paging bounds (page >= 1, per page in
// [MinPerPage, MaxPerPage]) and builds the filter. A non-empty deliveryDate
// that does not parse is a validation error.
func NewListRoutesQuery(page, perPage int, routeCode, assignedTruck, deliveryDate string) (ListRoutesQuery, error) {
	if page < 1 {
		return ListRoutesQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}
	if perPage < MinPerPage || perPage > MaxPerPage {
		return ListRoutesQuery{}, errs.NewValueIsOutOfRangeError("per_page", perPage, MinPerPage, MaxPerPage)
	}

	filter, err := NewRouteFilter(routeCode, assignedTruck, deliveryDate)
	if err != nil {
		return ListRoutesQuery{}, err
	}

	return ListRoutesQuery{
		page:    page,
		perPage: perPage,
		filter:  filter,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewRouteFilter builds a store filter from raw request values.
func NewRouteFilter(routeCode, assignedTruck, deliveryDate string) (ports.RouteFilter, error) {
	filter := ports.RouteFilter{
		RouteCode:     routeCode,
		AssignedTruck: assignedTruck,
	}
	if deliveryDate != "" {
		date, err := kernel.ParseDate(deliveryDate)
		if err != nil {
			return ports.RouteFilter{}, errs.NewValidationErrorWithCause(
				"the 'delivery_date' format must be YYYY-MM-DD", err)
		}
		filter.DeliveryDate = &date
	}
	return filter, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListRoutesQueryIsNotConstructed)
}

func (q ListRoutesQuery) Page() int {
	return q.page
}

func (q ListRoutesQuery) PerPage() int {
	return q.perPage
}

// Offset is the number of routes before the requested page.
func (q ListRoutesQuery) Offset() int {
	return (q.page - 1) * q.perPage
}

func (q ListRoutesQuery) Filter() ports.RouteFilter {
	return q.filter
}
