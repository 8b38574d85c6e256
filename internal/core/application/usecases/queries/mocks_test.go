package queries_test

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, r *route.Route) (*route.Route, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(*route.Route)
	return created, args.Error(1)
}

func (m *MockRouteRepository) Get(ctx context.Context, id int64) (*route.Route, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) FindByTruckAndDate(
	ctx context.Context,
	truck route.Truck,
	date kernel.Date,
) (*route.Route, error) {
	args := m.Called(ctx, truck, date)
	r, _ := args.Get(0).(*route.Route)
	return r, args.Error(1)
}

func (m *MockRouteRepository) ListPaged(
	ctx context.Context,
	limit, offset int,
	filter ports.RouteFilter,
) ([]*route.Route, error) {
	args := m.Called(ctx, limit, offset, filter)
	routes, _ := args.Get(0).([]*route.Route)
	return routes, args.Error(1)
}

func (m *MockRouteRepository) Count(ctx context.Context, filter ports.RouteFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) NextSequenceNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRouteRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrdersGateway struct{ mock.Mock }

func (m *MockOrdersGateway) OrdersFor(
	ctx context.Context,
	truck route.Truck,
	date kernel.Date,
) ([]ports.Order, error) {
	args := m.Called(ctx, truck, date)
	orders, _ := args.Get(0).([]ports.Order)
	return orders, args.Error(1)
}

func (m *MockOrdersGateway) HasOrders(ctx context.Context, truck route.Truck, date kernel.Date) (bool, error) {
	args := m.Called(ctx, truck, date)
	return args.Bool(0), args.Error(1)
}

type MockIdentityGateway struct{ mock.Mock }

func (m *MockIdentityGateway) UserByID(ctx context.Context, id string) (*ports.Client, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*ports.Client)
	return c, args.Error(1)
}

func (m *MockIdentityGateway) UsersByIDs(ctx context.Context, ids []string) (map[string]ports.Client, error) {
	args := m.Called(ctx, ids)
	clients, _ := args.Get(0).(map[string]ports.Client)
	return clients, args.Error(1)
}
