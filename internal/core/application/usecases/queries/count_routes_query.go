package queries

import (
	"errors"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/guard"
)

var ErrCountRoutesQueryIsNotConstructed = errors.New(
	"CountRoutesQuery must be created via NewCountRoutesQuery constructor",
)

// CountRoutesQuery counts the routes matching a filter.
type CountRoutesQuery struct {
	filter ports.RouteFilter

	guard guard.ConstructorGuard
}

func NewCountRoutesQuery(filter ports.RouteFilter) CountRoutesQuery {
	return CountRoutesQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q CountRoutesQuery) Validate() error {
	return q.guard.Validate(ErrCountRoutesQueryIsNotConstructed)
}

func (q CountRoutesQuery) Filter() ports.RouteFilter {
	return q.filter
}
