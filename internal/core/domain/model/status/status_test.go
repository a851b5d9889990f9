package status_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/status"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	t.Run("should create valid status", func(t *testing.T) {
		s, err := status.NewStatus("Ready", status.Flags{
			NotifyCustomer:    true,
			VisibleToOperator: true,
			VisibleToCourier:  true,
		})

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(0), s.ID())
		assert.Equal(t, "Ready", s.Name())
		assert.True(t, s.NotifyCustomer())
		assert.True(t, s.VisibleToOperator())
		assert.True(t, s.VisibleToCourier())
		assert.False(t, s.IsCompleting())
		assert.False(t, s.IsCancelling())
		assert.False(t, s.IsTerminal())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		s, err := status.NewStatus("", status.Flags{})

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreStatus(t *testing.T) {
	t.Run("should restore persisted status", func(t *testing.T) {
		s, err := status.RestoreStatus(4, "Delivered", status.Flags{IsCompleting: true})

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, int64(4), s.ID())
		assert.True(t, s.IsCompleting())
		assert.True(t, s.IsTerminal())
	})

	t.Run("should fail with non-positive id", func(t *testing.T) {
		s, err := status.RestoreStatus(0, "Delivered", status.Flags{})

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("cancelling status is terminal", func(t *testing.T) {
		s, err := status.RestoreStatus(5, "Cancelled", status.Flags{IsCancelling: true})

		require.NoError(t, err)
		assert.True(t, s.IsTerminal())
		assert.False(t, s.IsCompleting())
	})

	t.Run("status flagged both completing and cancelling stays usable", func(t *testing.T) {
		// Mutual exclusivity of the two flags is deliberately not enforced.
		s, err := status.RestoreStatus(6, "Closed", status.Flags{IsCompleting: true, IsCancelling: true})

		require.NoError(t, err)
		assert.True(t, s.IsCompleting())
		assert.True(t, s.IsCancelling())
		assert.True(t, s.IsTerminal())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var s status.Status

		require.ErrorIs(t, s.Validate(), status.ErrStatusIsNotConstructed)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var s *status.Status

		require.ErrorIs(t, s.Validate(), status.ErrStatusIsNotConstructed)
	})
}
