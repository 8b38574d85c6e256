package queries

import (
	"context"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

type CountRoutesQueryHandler struct {
	repo ports.RouteRepository
}

func NewCountRoutesQueryHandler(repo ports.RouteRepository) CountRoutesQueryHandler {
	return CountRoutesQueryHandler{repo: repo}
}

func (h CountRoutesQueryHandler) Handle(ctx context.Context, query CountRoutesQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	total, err := h.repo.Count(ctx, query.Filter())
	if err != nil {
		return 0, errs.NewBusinessLogicErrorWithCause("failed to count routes", err)
	}
	return total, nil
}
