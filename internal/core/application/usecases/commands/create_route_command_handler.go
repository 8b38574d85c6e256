package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/domain/services"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// CreateRouteCommandHandler assigns a route to a truck for a delivery date.
//
// The store and the Orders service are consulted before any transaction is
// opened. The transaction then takes the route creation lock, checks the
// (truck, date) pair again, derives the next route code and inserts the route.
//
// Example:
//
//	handler := NewCreateRouteCommandHandler(uowFactory, ordersGateway, window, logger)
//	cmd, _ := NewCreateRouteCommand("CAM-001", "2025-12-26")
//
//	created, err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindValidation: // bad input
//	case errs.KindBusinessLogic: // conflict, no orders or infrastructure failure
//	}
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	orders     ports.OrdersGateway
	window     *services.DeliveryWindow
	logger     *slog.Logger
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(
	uowFactory RouteUoWFactory,
	orders ports.OrdersGateway,
	window *services.DeliveryWindow,
	logger *slog.Logger,
) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		window:     window,
		logger:     logger.With("component", "CreateRouteCommandHandler"),
	}
}

// Handle runs the creation pipeline and returns the stored route.
// Validation and business errors are returned as they are; any other failure
// is wrapped into a business error "failed to create route".
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if h.window.Check(cmd.DeliveryDate()) != nil {
		return nil, errs.NewValidationError(fmt.Sprintf(
			"the 'delivery_date' must be from the next day onward (earliest: %s)", h.window.Earliest()))
	}

	created, err := h.create(ctx, cmd.Truck(), cmd.DeliveryDate())
	if err != nil {
		if errs.IsKinded(err) {
			return nil, err
		}
		h.logger.ErrorContext(ctx, "failed to create route",
			"assigned_truck", cmd.Truck().String(),
			"delivery_date", cmd.DeliveryDate().String(),
			"error", err)
		return nil, errs.NewBusinessLogicErrorWithCause("failed to create route", err)
	}

	h.logger.InfoContext(ctx, "route created",
		"route_code", created.Code(),
		"assigned_truck", created.Truck().String(),
		"delivery_date", created.DeliveryDate().String(),
		"orders_count", created.OrdersCount())

	return created, nil
}

func (h *CreateRouteCommandHandler) create(
	ctx context.Context,
	truck route.Truck,
	date kernel.Date,
) (*route.Route, error) {
	uow := h.uowFactory.Create()

	if err := ensureTruckIsFree(ctx, uow.RouteRepository(), truck, date); err != nil {
		return nil, err
	}

	hasOrders, err := h.orders.HasOrders(ctx, truck, date)
	if err != nil {
		return nil, err
	}
	if !hasOrders {
		return nil, errs.NewBusinessLogicError(fmt.Sprintf(
			"truck %s has no orders assigned for %s", truck, date))
	}

	orders, err := h.orders.OrdersFor(ctx, truck, date)
	if err != nil {
		return nil, err
	}

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LockRouteCreation(ctx); err != nil {
		return nil, err
	}

	repo := uow.RouteRepository()
	if err = ensureTruckIsFree(ctx, repo, truck, date); err != nil {
		return nil, err
	}

	sequence, err := repo.NextSequenceNumber(ctx)
	if err != nil {
		return nil, err
	}

	r, err := route.NewRoute(route.GenerateRouteCode(sequence), truck, date, len(orders))
	if err != nil {
		return nil, err
	}

	created, err := repo.Add(ctx, r)
	if errors.Is(err, route.ErrRouteAlreadyExists) {
		return nil, truckIsTakenError(truck, date)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}

func ensureTruckIsFree(ctx context.Context, repo ports.RouteRepository, truck route.Truck, date kernel.Date) error {
	existing, err := repo.FindByTruckAndDate(ctx, truck, date)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing != nil {
		return truckIsTakenError(truck, date)
	}
	return nil
}

func truckIsTakenError(truck route.Truck, date kernel.Date) error {
	return errs.NewBusinessLogicError(fmt.Sprintf(
		"truck %s already has a route assigned for %s", truck, date))
}
