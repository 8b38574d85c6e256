package commands

import (
	"context"
	"log/slog"

	"logistics/internal/pkg/errs"
)

// DeleteAllRoutesCommandHandler wipes the route store in one transaction and
// reports how many routes were removed.
type DeleteAllRoutesCommandHandler struct {
	uowFactory RouteUoWFactory
	logger     *slog.Logger
}

func NewDeleteAllRoutesCommandHandler(uowFactory RouteUoWFactory, logger *slog.Logger) DeleteAllRoutesCommandHandler {
	return DeleteAllRoutesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteAllRoutesCommandHandler"),
	}
}

func (h *DeleteAllRoutesCommandHandler) Handle(ctx context.Context, cmd DeleteAllRoutesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	deleted, err := h.deleteAll(ctx)
	if err != nil {
		return 0, errs.NewBusinessLogicErrorWithCause("failed to delete routes", err)
	}

	h.logger.InfoContext(ctx, "routes deleted", "deleted_count", deleted)
	return deleted, nil
}

func (h *DeleteAllRoutesCommandHandler) deleteAll(ctx context.Context) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.RouteRepository().DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
