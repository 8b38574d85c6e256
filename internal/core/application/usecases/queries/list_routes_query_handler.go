package queries

import (
	"context"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// ListRoutesQueryResponse is one page of routes with its pagination block.
type ListRoutesQueryResponse struct {
	Routes     []*route.Route
	Pagination Pagination
}

// ListRoutesQueryHandler reads a page of routes and the matching total. The
// page and the total are read independently and may disagree while routes are
// being created or deleted.
type ListRoutesQueryHandler struct {
	repo    ports.RouteRepository
	counter CountRoutesQueryHandler
}

func NewListRoutesQueryHandler(repo ports.RouteRepository) ListRoutesQueryHandler {
	return ListRoutesQueryHandler{
		repo:    repo,
		counter: NewCountRoutesQueryHandler(repo),
	}
}

func (h ListRoutesQueryHandler) Handle(ctx context.Context, query ListRoutesQuery) (ListRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRoutesQueryResponse{}, err
	}

	routes, err := h.repo.ListPaged(ctx, query.PerPage(), query.Offset(), query.Filter())
	if err != nil {
		return ListRoutesQueryResponse{}, errs.NewBusinessLogicErrorWithCause("failed to list routes", err)
	}
	if routes == nil {
		routes = make([]*route.Route, 0)
	}

	total, err := h.counter.Handle(ctx, NewCountRoutesQuery(query.Filter()))
	if err != nil {
		return ListRoutesQueryResponse{}, err
	}

	return ListRoutesQueryResponse{
		Routes:     routes,
		Pagination: NewPagination(query.Page(), query.PerPage(), total),
	}, nil
}
