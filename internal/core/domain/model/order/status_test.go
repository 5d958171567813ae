package order_test

import (
	"testing"

	"campusdrop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid statuses", func(t *testing.T) {
		cases := map[string]order.Status{
			"requested": order.Requested,
			"assigned":  order.Assigned,
			"picked_up": order.PickedUp,
			"delivered": order.Delivered,
			"cancelled": order.Cancelled,
		}

		for str, expected := range cases {
			status, err := order.StatusFromString(str)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject invalid strings", func(t *testing.T) {
		for _, str := range []string{"", "unknown", "REQUESTED", "pending", "picked-up"} {
			status, err := order.StatusFromString(str)
			require.Error(t, err)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "requested", order.Requested.String())
	assert.Equal(t, "assigned", order.Assigned.String())
	assert.Equal(t, "picked_up", order.PickedUp.String())
	assert.Equal(t, "delivered", order.Delivered.String())
	assert.Equal(t, "cancelled", order.Cancelled.String())
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
}

func TestStatusValidate(t *testing.T) {
	t.Run("should accept valid statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Requested, order.Assigned, order.PickedUp, order.Delivered, order.Cancelled,
		} {
			assert.NoError(t, s.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		assert.Error(t, order.Unknown.Validate())
		assert.Error(t, order.Status(99).Validate())
		assert.Error(t, order.Status(-1).Validate())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, order.Requested.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.PickedUp.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatusCanTransitionTo(t *testing.T) {
	allStatuses := []order.Status{
		order.Requested, order.Assigned, order.PickedUp, order.Delivered, order.Cancelled,
	}

	allowed := map[order.Status][]order.Status{
		order.Requested: {order.Assigned, order.Cancelled},
		order.Assigned:  {order.PickedUp, order.Cancelled},
		order.PickedUp:  {order.Delivered, order.Cancelled},
		order.Delivered: {},
		order.Cancelled: {},
	}

	for from, targets := range allowed {
		allowedSet := make(map[order.Status]bool, len(targets))
		for _, target := range targets {
			allowedSet[target] = true
		}

		for _, to := range allStatuses {
			assert.Equal(t, allowedSet[to], from.CanTransitionTo(to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("should perform allowed transitions", func(t *testing.T) {
		next, err := order.Requested.TransitionTo(order.Assigned)
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, next)

		next, err = order.PickedUp.TransitionTo(order.Delivered)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should reject skipping the pickup step", func(t *testing.T) {
		next, err := order.Assigned.TransitionTo(order.Delivered)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Unknown, next)
	})

	t.Run("should reject leaving terminal states", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Cancelled)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)

		_, err = order.Cancelled.TransitionTo(order.Requested)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.Requested.TransitionTo(order.Unknown)
		require.Error(t, err)
		assert.NotErrorIs(t, err, order.ErrInvalidStatusTransition)
	})

	t.Run("should name both statuses in the error", func(t *testing.T) {
		_, err := order.Requested.TransitionTo(order.Delivered)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requested -> delivered")
	})
}

func TestStatusValidateCanHavePartner(t *testing.T) {
	t.Run("requested must not have a partner", func(t *testing.T) {
		assert.NoError(t, order.Requested.ValidateCanHavePartner(false))
		assert.Error(t, order.Requested.ValidateCanHavePartner(true))
	})

	t.Run("active statuses must have a partner", func(t *testing.T) {
		for _, s := range []order.Status{order.Assigned, order.PickedUp, order.Delivered} {
			assert.NoError(t, s.ValidateCanHavePartner(true), "%s with partner", s)
			assert.Error(t, s.ValidateCanHavePartner(false), "%s without partner", s)
		}
	})

	t.Run("cancelled accepts both", func(t *testing.T) {
		assert.NoError(t, order.Cancelled.ValidateCanHavePartner(true))
		assert.NoError(t, order.Cancelled.ValidateCanHavePartner(false))
	})
}
