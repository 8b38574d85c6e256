package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRouteCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateRouteCommand(" CAM-002 ", "2025-12-26T08:30:00Z")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, route.Truck("CAM-002"), cmd.Truck())
	assert.Equal(t, "2025-12-26", cmd.DeliveryDate().String())
}

func TestNewCreateRouteCommand_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		truck   string
		date    string
		message string
	}{
		{"both missing reports truck first", "", "", "the 'assigned_truck' field is required"},
		{"missing truck with bad date", "", "not-a-date", "the 'assigned_truck' field is required"},
		{"missing date with unknown truck", "CAM-999", "", "the 'delivery_date' field is required"},
		{"unknown truck before bad date", "CAM-999", "not-a-date", "allowed trucks: CAM-001, CAM-002"},
		{"blank truck is not in the fleet", "   ", "2025-12-26", "is not valid"},
		{"unknown truck is quoted trimmed", "  CAM-999\t", "2025-12-26", "the truck 'CAM-999' is not valid"},
		{"bad date", "CAM-001", "26/12/2025", "must be a valid ISO 8601 date (YYYY-MM-DD)"},
		{"impossible date", "CAM-001", "2025-02-30", "must be a valid ISO 8601 date (YYYY-MM-DD)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateRouteCommand(tt.truck, tt.date)

			require.ErrorIs(t, err, errs.ErrValidation)
			assert.Contains(t, err.Error(), tt.message)
			require.ErrorIs(t, cmd.Validate(), commands.ErrCreateRouteCommandIsNotConstructed)
		})
	}
}

func TestNewCreateRouteCommandForDate(t *testing.T) {
	date, err := kernel.NewDate(2025, 12, 26)
	require.NoError(t, err)

	cmd, err := commands.NewCreateRouteCommandForDate("CAM-001", date)
	require.NoError(t, err)
	assert.True(t, cmd.DeliveryDate().IsEqual(date))

	_, err = commands.NewCreateRouteCommandForDate("CAM-001", kernel.Date{})
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "the 'delivery_date' field is required")

	_, err = commands.NewCreateRouteCommandForDate("", kernel.Date{})
	assert.Contains(t, err.Error(), "the 'assigned_truck' field is required")
}
