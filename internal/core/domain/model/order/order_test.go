package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOffer(t *testing.T, owner kernel.UUID) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), owner, "Logo design", "Logos", nil, []offer.DetailSpec{
		{Tier: offer.TierBasic, Title: "Basic", Revisions: 1, DeliveryDays: 7, Price: kernel.MustPrice("50"), Features: []string{"Logo"}},
		{Tier: offer.TierStandard, Title: "Standard", Revisions: 3, DeliveryDays: 5, Price: kernel.MustPrice("150"), Features: []string{"Logo", "Card"}},
		{Tier: offer.TierPremium, Title: "Premium", Revisions: 10, DeliveryDays: 2, Price: kernel.MustPrice("300"), Features: []string{"Logo", "Card", "Flyer"}},
	})
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	business := kernel.NewUUID()
	customer := kernel.NewUUID()
	o := newOffer(t, business)
	detail, _ := o.Detail(offer.TierStandard)

	t.Run("should start in progress with a snapshot of the detail", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), customer, business, detail)

		require.NoError(t, err)
		require.NoError(t, ord.Validate())
		assert.Equal(t, order.InProgress, ord.Status())
		assert.Equal(t, customer, ord.CustomerID())
		assert.Equal(t, business, ord.BusinessID())
		assert.Equal(t, detail.ID(), ord.DetailID())
		assert.Equal(t, order.SnapshotOf(detail), ord.Snapshot())
		assert.True(t, ord.IsParty(customer))
		assert.True(t, ord.IsParty(business))
		assert.False(t, ord.IsParty(kernel.NewUUID()))
	})

	t.Run("should reject ordering an own offer", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), business, business, detail)

		require.ErrorIs(t, err, order.ErrOwnOffer)
		assert.True(t, errs.IsValidation(err))
		assert.Nil(t, ord)
	})

	t.Run("should require a detail", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), customer, business, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report invalid ids together", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.UUID{}, business, detail)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Contains(t, err.Error(), "customer_user")
	})
}

func TestOrder_SnapshotIsFrozen(t *testing.T) {
	business := kernel.NewUUID()
	o := newOffer(t, business)
	detail, _ := o.Detail(offer.TierBasic)
	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), business, detail)
	require.NoError(t, err)

	price := kernel.MustPrice("999")
	features := []string{"Everything"}
	require.NoError(t, o.Update(offer.Patch{Details: []offer.DetailPatch{
		{Tier: offer.TierBasic, Price: &price, Features: &features},
	}}))

	snap := ord.Snapshot()
	assert.Equal(t, "50.00", snap.Price.String())
	assert.Equal(t, []string{"Logo"}, snap.Features)

	snap.Features[0] = "changed"
	assert.Equal(t, []string{"Logo"}, ord.Snapshot().Features)
}

func TestOrder_ChangeStatus(t *testing.T) {
	business := kernel.NewUUID()
	detail, _ := newOffer(t, business).Detail(offer.TierPremium)

	t.Run("should complete an order in progress", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), business, detail)
		require.NoError(t, err)

		require.NoError(t, ord.ChangeStatus(order.Completed))

		assert.Equal(t, order.Completed, ord.Status())
		assert.False(t, ord.UpdatedAt().Before(ord.CreatedAt()))
	})

	t.Run("should not reopen a completed order", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), business, detail)
		require.NoError(t, err)
		require.NoError(t, ord.ChangeStatus(order.Completed))

		err = ord.ChangeStatus(order.InProgress)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "cannot change status from completed to in_progress")
		assert.Equal(t, order.Completed, ord.Status())
	})

	t.Run("should not leave a cancelled order", func(t *testing.T) {
		ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), business, detail)
		require.NoError(t, err)
		require.NoError(t, ord.ChangeStatus(order.Cancelled))

		require.Error(t, ord.ChangeStatus(order.Completed))
		assert.Equal(t, order.Cancelled, ord.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	state := order.OrderState{
		ID:         kernel.NewUUID(),
		CustomerID: kernel.NewUUID(),
		BusinessID: kernel.NewUUID(),
		DetailID:   kernel.NewUUID(),
		Snapshot:   order.Snapshot{Title: "Basic", DeliveryDays: 3, Tier: offer.TierBasic, Features: []string{"a"}},
		Status:     order.Completed,
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}

	t.Run("should restore a valid state", func(t *testing.T) {
		ord, err := order.RestoreOrder(state)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, ord.Status())
		assert.Equal(t, state.Snapshot, ord.Snapshot())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		bad := state
		bad.Status = order.Unknown

		_, err := order.RestoreOrder(bad)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
