package partner_test

import (
	"testing"

	"campusdrop/internal/core/domain/model/item"
	"campusdrop/internal/core/domain/model/kernel"
	"campusdrop/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreItem(t *testing.T, weightKg float64, fragile bool) *item.Item {
	t.Helper()
	it, err := item.RestoreItem(kernel.NewUUID(), "Test Item", "misc", nil, weightKg, fragile, true)
	require.NoError(t, err)
	return it
}

func TestRestorePartner(t *testing.T) {
	validID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	t.Run("should restore valid partner", func(t *testing.T) {
		p, err := partner.RestorePartner(validID, "Alice", &locationID, 5.0, true, true)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(validID))
		assert.Equal(t, "Alice", p.Name())
		require.NotNil(t, p.CurrentLocationID())
		assert.True(t, locationID.IsEqual(*p.CurrentLocationID()))
		assert.InDelta(t, 5.0, p.MaxWeightKg(), 0.0001)
		assert.True(t, p.CanHandleFragile())
		assert.True(t, p.Available())
	})

	t.Run("should allow partner without current location", func(t *testing.T) {
		p, err := partner.RestorePartner(validID, "Bob", nil, 3.0, false, true)

		require.NoError(t, err)
		assert.Nil(t, p.CurrentLocationID())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		p, err := partner.RestorePartner(validID, "", nil, 3.0, false, true)

		require.ErrorIs(t, err, partner.ErrNameIsRequired)
		assert.Nil(t, p)
	})

	t.Run("should fail with non-positive capacity", func(t *testing.T) {
		for _, capacity := range []float64{0, -2} {
			p, err := partner.RestorePartner(validID, "Alice", nil, capacity, false, true)

			require.Error(t, err)
			assert.Nil(t, p)
			assert.Contains(t, err.Error(), "max weight")
		}
	})
}

func TestPartnerCanCarry(t *testing.T) {
	newPartner := func(t *testing.T, maxWeightKg float64, fragileCertified, available bool) *partner.Partner {
		t.Helper()
		p, err := partner.RestorePartner(
			kernel.NewUUID(), "Courier", nil, maxWeightKg, fragileCertified, available,
		)
		require.NoError(t, err)
		return p
	}

	t.Run("should carry light non-fragile item", func(t *testing.T) {
		p := newPartner(t, 5.0, false, true)

		ok, err := p.CanCarry(restoreItem(t, 2.0, false))

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should refuse when unavailable", func(t *testing.T) {
		p := newPartner(t, 5.0, true, false)

		ok, err := p.CanCarry(restoreItem(t, 1.0, false))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should refuse when item exceeds capacity", func(t *testing.T) {
		p := newPartner(t, 2.0, true, true)

		ok, err := p.CanCarry(restoreItem(t, 2.5, false))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should carry item exactly at capacity", func(t *testing.T) {
		p := newPartner(t, 2.5, false, true)

		ok, err := p.CanCarry(restoreItem(t, 2.5, false))

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should refuse fragile item without certification", func(t *testing.T) {
		p := newPartner(t, 5.0, false, true)

		ok, err := p.CanCarry(restoreItem(t, 1.0, true))

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("should carry fragile item when certified", func(t *testing.T) {
		p := newPartner(t, 5.0, true, true)

		ok, err := p.CanCarry(restoreItem(t, 1.0, true))

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		p := newPartner(t, 5.0, true, true)

		var it item.Item
		ok, err := p.CanCarry(&it)

		require.Error(t, err)
		assert.False(t, ok)
	})
}

func TestPartnerIsAtLocation(t *testing.T) {
	locationID := kernel.NewUUID()
	otherID := kernel.NewUUID()

	t.Run("should match the partner's current location", func(t *testing.T) {
		p, err := partner.RestorePartner(kernel.NewUUID(), "Alice", &locationID, 5.0, false, true)
		require.NoError(t, err)

		assert.True(t, p.IsAtLocation(&locationID))
		assert.False(t, p.IsAtLocation(&otherID))
		assert.False(t, p.IsAtLocation(nil))
	})

	t.Run("partner without location is at no location", func(t *testing.T) {
		p, err := partner.RestorePartner(kernel.NewUUID(), "Bob", nil, 5.0, false, true)
		require.NoError(t, err)

		assert.False(t, p.IsAtLocation(&locationID))
		assert.False(t, p.IsAtLocation(nil))
	})
}

func TestPartnerValidate(t *testing.T) {
	var p partner.Partner
	require.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)

	var nilPartner *partner.Partner
	require.ErrorIs(t, nilPartner.Validate(), partner.ErrPartnerIsNotConstructed)
}
