package integration

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"
)

type orderDTO struct {
	ID                    flexString `json:"id"`
	ClientID              flexString `json:"client_id"`
	AssignedTruck         flexString `json:"assigned_truck"`
	ScheduledDeliveryDate flexString `json:"scheduled_delivery_date"`
	Status                flexString `json:"status"`
}

// OrdersClient implements ports.OrdersGateway over the Orders service API.
type OrdersClient struct {
	client
}

var _ ports.OrdersGateway = (*OrdersClient)(nil)

func NewOrdersClient(cfg Config, logger *slog.Logger) *OrdersClient {
	return &OrdersClient{client: newClient("orders", cfg, logger)}
}

// OrdersFor calls GET /orders/by-truck. Only a 200 with success and data yields
// orders; 404 and any other status yield none.
func (c *OrdersClient) OrdersFor(ctx context.Context, truck route.Truck, date kernel.Date) ([]ports.Order, error) {
	query := url.Values{}
	query.Set("assigned_truck", truck.String())
	query.Set("scheduled_delivery_date", date.String())

	var body envelope[[]orderDTO]
	status, err := c.getJSON(ctx, "orders by truck", "/orders/by-truck", query, &body)
	if err != nil {
		c.logger.ErrorContext(ctx, "orders request failed",
			"assigned_truck", truck.String(), "delivery_date", date.String(), "error", err)
		return nil, err
	}

	switch {
	case status == http.StatusNotFound:
		return []ports.Order{}, nil
	case status != http.StatusOK:
		c.logger.WarnContext(ctx, "unexpected orders response", "status", status,
			"assigned_truck", truck.String(), "delivery_date", date.String())
		return []ports.Order{}, nil
	case !body.Success:
		return []ports.Order{}, nil
	}

	orders := make([]ports.Order, 0, len(body.Data))
	for _, dto := range body.Data {
		orders = append(orders, ports.Order{
			ID:                    string(dto.ID),
			ClientID:              string(dto.ClientID),
			AssignedTruck:         string(dto.AssignedTruck),
			ScheduledDeliveryDate: string(dto.ScheduledDeliveryDate),
			Status:                string(dto.Status),
		})
	}
	return orders, nil
}

// HasOrders reports whether OrdersFor finds at least one order.
func (c *OrdersClient) HasOrders(ctx context.Context, truck route.Truck, date kernel.Date) (bool, error) {
	orders, err := c.OrdersFor(ctx, truck, date)
	if err != nil {
		return false, err
	}
	return len(orders) > 0, nil
}
