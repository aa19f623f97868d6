package order_test

import (
	"fmt"
	"testing"

	"printflow/internal/core/domain/model/actor"
	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.New,
		order.Assigned,
		order.InProduction,
		order.Ready,
		order.OutForDelivery,
		order.PickedUp,
		order.Delivered,
		order.OnHold,
		order.Canceled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all real statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(100)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.New, "new"},
		{order.Assigned, "assigned"},
		{order.InProduction, "in_production"},
		{order.Ready, "ready"},
		{order.OutForDelivery, "out_for_delivery"},
		{order.PickedUp, "picked_up"},
		{order.Delivered, "delivered"},
		{order.OnHold, "on_hold"},
		{order.Canceled, "canceled"},
		{order.Unknown, "unknown"},
		{order.Status(42), "unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Label(t *testing.T) {
	assert.Equal(t, "In production", order.InProduction.Label())
	assert.Equal(t, "Out for delivery", order.OutForDelivery.Label())
	assert.Equal(t, "Unknown", order.Status(42).Label())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips every valid status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	terminal := map[order.Status]bool{
		order.Delivered: true,
		order.PickedUp:  true,
		order.Canceled:  true,
	}

	for _, status := range allStatuses() {
		assert.Equal(t, terminal[status], status.IsTerminal(), "status %s", status)
	}
}

func TestStatus_Rank(t *testing.T) {
	t.Run("follows the fulfillment sequence", func(t *testing.T) {
		assert.Less(t, order.New.Rank(), order.Assigned.Rank())
		assert.Less(t, order.Assigned.Rank(), order.InProduction.Rank())
		assert.Less(t, order.InProduction.Rank(), order.Ready.Rank())
		assert.Less(t, order.Ready.Rank(), order.OutForDelivery.Rank())
		assert.Less(t, order.OutForDelivery.Rank(), order.Delivered.Rank())
		assert.Equal(t, order.Delivered.Rank(), order.PickedUp.Rank())
	})

	t.Run("invalid statuses rank negative", func(t *testing.T) {
		assert.Equal(t, -1, order.Status(42).Rank())
	})
}

func TestCanSetStatus(t *testing.T) {
	t.Run("manager may set every status", func(t *testing.T) {
		for _, status := range allStatuses() {
			assert.True(t, order.CanSetStatus(actor.Manager, status), "manager should set %s", status)
		}
	})

	t.Run("printshop manager set", func(t *testing.T) {
		allowed := map[order.Status]bool{
			order.InProduction: true,
			order.OnHold:       true,
			order.Ready:        true,
			order.PickedUp:     true,
			order.Canceled:     true,
		}

		for _, status := range allStatuses() {
			assert.Equal(t, allowed[status], order.CanSetStatus(actor.PrintshopManager, status),
				"printshop_manager / %s", status)
		}
	})

	t.Run("driver set", func(t *testing.T) {
		allowed := map[order.Status]bool{
			order.OutForDelivery: true,
			order.Delivered:      true,
			order.OnHold:         true,
			order.Canceled:       true,
		}

		for _, status := range allStatuses() {
			assert.Equal(t, allowed[status], order.CanSetStatus(actor.Driver, status),
				"driver / %s", status)
		}
	})

	t.Run("unknown role may set nothing", func(t *testing.T) {
		for _, status := range allStatuses() {
			assert.False(t, order.CanSetStatus(actor.Unknown, status))
		}
	})
}

func TestValidateTransition(t *testing.T) {
	t.Run("allows permitted transitions from non-terminal states", func(t *testing.T) {
		require.NoError(t, order.ValidateTransition(order.New, order.Canceled, actor.Manager))
		require.NoError(t, order.ValidateTransition(order.Assigned, order.InProduction, actor.PrintshopManager))
		require.NoError(t, order.ValidateTransition(order.Ready, order.OutForDelivery, actor.Driver))
		require.NoError(t, order.ValidateTransition(order.InProduction, order.OnHold, actor.Driver))
	})

	t.Run("rejects transitions out of terminal states", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.PickedUp, order.Canceled} {
			err := order.ValidateTransition(terminal, order.New, actor.Manager)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrTerminalState)
		}
	})

	t.Run("terminal lock wins over role permission", func(t *testing.T) {
		// Manager's allowed set contains canceled, but delivered is terminal.
		err := order.ValidateTransition(order.Delivered, order.Canceled, actor.Manager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTerminalState)
	})

	t.Run("rejects statuses outside the role's allowed set", func(t *testing.T) {
		err := order.ValidateTransition(order.Assigned, order.InProduction, actor.Driver)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)

		var forbidden *errs.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "driver", forbidden.Role)
		assert.Equal(t, "in_production", forbidden.Status)
	})

	t.Run("rejects invalid requested status", func(t *testing.T) {
		err := order.ValidateTransition(order.New, order.Unknown, actor.Manager)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("full role permission property", func(t *testing.T) {
		roles := []actor.Role{actor.Manager, actor.PrintshopManager, actor.Driver}

		for _, role := range roles {
			for _, requested := range allStatuses() {
				err := order.ValidateTransition(order.OnHold, requested, role)

				if requested == order.OnHold {
					continue // same-status requests are handled as no-ops by the item
				}
				if order.CanSetStatus(role, requested) {
					require.NoError(t, err, "%s should set %s", role, requested)
				} else {
					require.ErrorIs(t, err, errs.ErrForbidden, "%s should not set %s", role, requested)
				}
			}
		}
	})
}
