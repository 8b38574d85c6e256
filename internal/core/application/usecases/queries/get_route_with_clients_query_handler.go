package queries

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"

	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// GetRouteWithClientsQueryHandler assembles a route with its clients.
//
// Orders are fetched again from the Orders service, so the client list follows
// the orders as they are now, while the route's orders count stays the
// snapshot taken at creation. Clients the Identity service cannot resolve are
// left out. Clients are sorted by ID, numerically when the IDs are integers.
type GetRouteWithClientsQueryHandler struct {
	repo     ports.RouteRepository
	orders   ports.OrdersGateway
	identity ports.IdentityGateway
	logger   *slog.Logger
}

func NewGetRouteWithClientsQueryHandler(
	repo ports.RouteRepository,
	orders ports.OrdersGateway,
	identity ports.IdentityGateway,
	logger *slog.Logger,
) GetRouteWithClientsQueryHandler {
	return GetRouteWithClientsQueryHandler{
		repo:     repo,
		orders:   orders,
		identity: identity,
		logger:   logger.With("component", "GetRouteWithClientsQueryHandler"),
	}
}

func (h GetRouteWithClientsQueryHandler) Handle(
	ctx context.Context,
	query GetRouteWithClientsQuery,
) (GetRouteWithClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRouteWithClientsQueryResponse{}, err
	}

	r, err := h.repo.Get(ctx, query.RouteID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return GetRouteWithClientsQueryResponse{}, errs.NewNotFoundErrorWithCause("route not found", err)
	}
	if err != nil {
		return GetRouteWithClientsQueryResponse{}, errs.NewBusinessLogicErrorWithCause(
			"failed to get route with clients", err)
	}

	orders, err := h.orders.OrdersFor(ctx, r.Truck(), r.DeliveryDate())
	if err != nil {
		return GetRouteWithClientsQueryResponse{}, errs.NewBusinessLogicErrorWithCause(
			"failed to get route with clients", err)
	}

	return GetRouteWithClientsQueryResponse{
		Route:   r,
		Clients: h.resolveClients(ctx, clientIDs(orders)),
	}, nil
}

func (h GetRouteWithClientsQueryHandler) resolveClients(ctx context.Context, ids []string) []ports.Client {
	clients := make([]ports.Client, 0, len(ids))
	if len(ids) == 0 {
		return clients
	}

	resolved, err := h.identity.UsersByIDs(ctx, ids)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to resolve clients", "client_ids", ids, "error", err)
		return clients
	}

	for _, id := range ids {
		if c, ok := resolved[id]; ok {
			clients = append(clients, c)
		} else {
			h.logger.WarnContext(ctx, "client not resolved", "client_id", id)
		}
	}

	slices.SortFunc(clients, func(a, b ports.Client) int {
		return compareClientIDs(a.ID, b.ID)
	})
	return clients
}

// compareClientIDs orders integer IDs numerically and anything else
// lexicographically. Integer IDs sort before non-integer ones.
func compareClientIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB == nil:
		return cmp.Compare(na, nb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// clientIDs returns the distinct non-empty client IDs of orders.
func clientIDs(orders []ports.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.ClientID == "" {
			continue
		}
		if _, ok := seen[o.ClientID]; ok {
			continue
		}
		seen[o.ClientID] = struct{}{}
		ids = append(ids, o.ClientID)
	}
	return ids
}
