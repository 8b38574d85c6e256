package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistics/internal/adapters/out/integration"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/requestid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testDate(t *testing.T) kernel.Date {
	t.Helper()
	d, err := kernel.NewDate(2025, 12, 26)
	require.NoError(t, err)
	return d
}

func newOrdersClient(t *testing.T, handler http.HandlerFunc) *integration.OrdersClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return integration.NewOrdersClient(integration.Config{BaseURL: srv.URL + "/"}, discardLogger())
}

func TestOrdersClient_OrdersFor_Success(t *testing.T) {
	client := newOrdersClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/by-truck", r.URL.Path)
		assert.Equal(t, "CAM-001", r.URL.Query().Get("assigned_truck"))
		assert.Equal(t, "2025-12-26", r.URL.Query().Get("scheduled_delivery_date"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "req-1", r.Header.Get(requestid.Header))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[
			{"id":1,"client_id":"client-1","status":"PENDING"},
			{"id":"2","client_id":null}
		]}`))
	})

	ctx := requestid.WithID(t.Context(), "req-1")
	orders, err := client.OrdersFor(ctx, "CAM-001", testDate(t))

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, "client-1", orders[0].ClientID)
	assert.Equal(t, "PENDING", orders[0].Status)
	assert.Equal(t, "2", orders[1].ID)
	assert.Empty(t, orders[1].ClientID)
}

func TestOrdersClient_OrdersFor_EmptyResults(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not found", http.StatusNotFound, `{"success":false}`},
		{"server error", http.StatusInternalServerError, `boom`},
		{"success false", http.StatusOK, `{"success":false,"data":[{"id":1}]}`},
		{"no data", http.StatusOK, `{"success":true}`},
		{"empty data", http.StatusOK, `{"success":true,"data":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newOrdersClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			orders, err := client.OrdersFor(t.Context(), "CAM-001", testDate(t))
			require.NoError(t, err)
			assert.NotNil(t, orders)
			assert.Empty(t, orders)

			has, err := client.HasOrders(t.Context(), "CAM-001", testDate(t))
			require.NoError(t, err)
			assert.False(t, has)
		})
	}
}

func TestOrdersClient_HasOrders(t *testing.T) {
	client := newOrdersClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1}]}`))
	})

	has, err := client.HasOrders(t.Context(), "CAM-001", testDate(t))
	require.NoError(t, err)
	assert.True(t, has)
}

func TestOrdersClient_Failures(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		client := newOrdersClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"data":`))
		})

		_, err := client.OrdersFor(t.Context(), "CAM-001", testDate(t))

		require.ErrorIs(t, err, integration.ErrIntegration)
		assert.Contains(t, err.Error(), "orders service")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		client := integration.NewOrdersClient(integration.Config{BaseURL: srv.URL}, discardLogger())

		_, err := client.HasOrders(t.Context(), "CAM-001", testDate(t))

		require.ErrorIs(t, err, integration.ErrIntegration)
		var ie *integration.Error
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "orders", ie.Service)
		require.Error(t, client.Ping(t.Context()))
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		client := integration.NewOrdersClient(
			integration.Config{BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, discardLogger())

		_, err := client.OrdersFor(context.Background(), "CAM-001", testDate(t))

		require.ErrorIs(t, err, integration.ErrIntegration)
	})
}

func TestOrdersClient_Ping(t *testing.T) {
	client := newOrdersClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	require.NoError(t, client.Ping(t.Context()))
	assert.Equal(t, "orders", client.Name())
}
