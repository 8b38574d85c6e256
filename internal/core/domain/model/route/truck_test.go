package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTruck(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    route.Truck
		wantErr error
	}{
		{"first truck", "CAM-001", "CAM-001", nil},
		{"last truck", "CAM-005", "CAM-005", nil},
		{"trimmed", "  CAM-003 ", "CAM-003", nil},
		{"empty", "", "", errs.ErrValueIsRequired},
		{"blank", "   ", "", errs.ErrValueIsRequired},
		{"outside fleet", "CAM-006", "", errs.ErrValueIsInvalid},
		{"lowercase", "cam-001", "", errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := route.ParseTruck(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllowedTrucks(t *testing.T) {
	trucks := route.AllowedTrucks()
	require.Len(t, trucks, 5)
	assert.Equal(t, route.Truck("CAM-001"), trucks[0])

	trucks[0] = "CAM-XXX"
	assert.Equal(t, route.Truck("CAM-001"), route.AllowedTrucks()[0])

	assert.Equal(t, "CAM-001, CAM-002, CAM-003, CAM-004, CAM-005", route.AllowedTrucksList())
}
