package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindedErrors(t *testing.T) {
	t.Run("validation error matches only its sentinel", func(t *testing.T) {
		err := errs.NewValidationError("the 'assigned_truck' field is required")

		assert.Equal(t, errs.KindValidation, err.Kind)
		assert.Equal(t, "the 'assigned_truck' field is required", err.Error())
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.NotErrorIs(t, err, errs.ErrBusinessLogic)
		assert.NotErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("business logic error keeps cause text and chain", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewBusinessLogicErrorWithCause("failed to create route", cause)

		assert.Equal(t, "failed to create route (cause: connection refused)", err.Error())
		require.ErrorIs(t, err, errs.ErrBusinessLogic)
		require.ErrorIs(t, err, cause)
		assert.NotErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("not found is also a business logic error", func(t *testing.T) {
		err := errs.NewNotFoundError("route not found")

		require.ErrorIs(t, err, errs.ErrNotFound)
		require.ErrorIs(t, err, errs.ErrBusinessLogic)
		assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
	})

	t.Run("not found with cause", func(t *testing.T) {
		cause := errs.NewObjectNotFoundError("route", 7)
		err := errs.NewNotFoundErrorWithCause("route not found", cause)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), "route not found (cause: object not found")
	})
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, errs.KindUnknown},
		{"plain", errors.New("boom"), errs.KindUnknown},
		{"validation", errs.NewValidationError("bad"), errs.KindValidation},
		{"business", errs.NewBusinessLogicError("conflict"), errs.KindBusinessLogic},
		{"wrapped", fmt.Errorf("handler: %w", errs.NewValidationError("bad")), errs.KindValidation},
		{"parameter error", errs.NewValueIsRequiredError("truck"), errs.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.KindOf(tt.err))
			assert.Equal(t, tt.want != errs.KindUnknown, errs.IsKinded(tt.err))
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Validation", errs.KindValidation.String())
	assert.Equal(t, "BusinessLogic", errs.KindBusinessLogic.String())
	assert.Equal(t, "NotFound", errs.KindNotFound.String())
	assert.Equal(t, "Unknown", errs.Kind(42).String())
}
