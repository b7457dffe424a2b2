package offer_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func specs(basic, standard, premium string) []offer.DetailSpec {
	return []offer.DetailSpec{
		{Tier: offer.TierPremium, Title: "Premium", Revisions: 10, DeliveryDays: 2, Price: kernel.MustPrice(premium), Features: []string{"Logo", "Flyer", "Card"}},
		{Tier: offer.TierBasic, Title: "Basic", Revisions: 1, DeliveryDays: 7, Price: kernel.MustPrice(basic), Features: []string{"Logo"}},
		{Tier: offer.TierStandard, Title: "Standard", Revisions: 3, DeliveryDays: 5, Price: kernel.MustPrice(standard), Features: []string{"Logo", "Card"}},
	}
}

func newOffer(t *testing.T) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), "Logo design", "Logos for you", nil, specs("50", "150", "300"))
	require.NoError(t, err)
	return o
}

func tiersOf(o *offer.Offer) []offer.Tier {
	var tiers []offer.Tier
	for _, d := range o.Details() {
		tiers = append(tiers, d.Tier())
	}
	return tiers
}

func TestNewOffer(t *testing.T) {
	owner := kernel.NewUUID()
	image := "logo.png"

	o, err := offer.NewOffer(kernel.NewUUID(), owner, "Logo design", "Logos for you", &image, specs("50", "150", "300"))

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.True(t, o.IsOwnedBy(owner))
	assert.Equal(t, offer.Tiers(), tiersOf(o))
	assert.Equal(t, "50.00", o.MinPrice().String())
	assert.Equal(t, 2, o.MinDeliveryDays())
	require.NotNil(t, o.Image())
	assert.Equal(t, "logo.png", *o.Image())
	assert.Equal(t, o.CreatedAt(), o.UpdatedAt())

	basic, ok := o.Detail(offer.TierBasic)
	require.True(t, ok)
	byID, ok := o.DetailByID(basic.ID())
	require.True(t, ok)
	assert.Same(t, basic, byID)
	assert.Equal(t, []string{"Logo"}, basic.Features())
}

func TestNewOffer_RejectsWrongTierSets(t *testing.T) {
	full := specs("50", "150", "300")

	tests := []struct {
		name    string
		details []offer.DetailSpec
	}{
		{"two details", full[:2]},
		{"four details", append(specs("50", "150", "300"), full[0])},
		{"duplicate tier", []offer.DetailSpec{full[0], full[0], full[1]}},
		{"no details", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), "Logo", "Logos", nil, tt.details)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.True(t, errs.IsValidation(err))
		})
	}

	t.Run("unknown tier", func(t *testing.T) {
		details := specs("50", "150", "300")
		details[0].Tier = "gold"

		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), "Logo", "Logos", nil, details)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewOffer_ValidatesDetailFields(t *testing.T) {
	details := specs("50", "150", "300")
	details[0].DeliveryDays = 0
	details[1].Revisions = -1
	details[2].Features = []string{"ok", " "}

	_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), "", "Logos", nil, details)

	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	for _, part := range []string{"delivery_time_in_days", "revisions", "features", "title"} {
		assert.Contains(t, err.Error(), part)
	}
}

func TestOffer_Update(t *testing.T) {
	o := newOffer(t)
	title := "Better logos"
	price := kernel.MustPrice("20")
	features := []string{"Logo", "Source files"}

	err := o.Update(offer.Patch{
		Title: &title,
		Details: []offer.DetailPatch{
			{Tier: offer.TierBasic, Price: &price, Features: &features},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Better logos", o.Title())
	assert.Equal(t, "Logos for you", o.Description())
	assert.Equal(t, offer.Tiers(), tiersOf(o))
	assert.Equal(t, "20.00", o.MinPrice().String())
	basic, _ := o.Detail(offer.TierBasic)
	assert.Equal(t, features, basic.Features())
	assert.Equal(t, "Basic", basic.Title())
	assert.True(t, !o.UpdatedAt().Before(o.CreatedAt()))
}

func TestOffer_Update_KeepsDetailIDs(t *testing.T) {
	o := newOffer(t)
	before, _ := o.Detail(offer.TierPremium)
	days := 1

	require.NoError(t, o.Update(offer.Patch{Details: []offer.DetailPatch{{Tier: offer.TierPremium, DeliveryDays: &days}}}))

	after, _ := o.Detail(offer.TierPremium)
	assert.Equal(t, before.ID(), after.ID())
	assert.Equal(t, 1, o.MinDeliveryDays())
}

func TestOffer_Update_IsAtomic(t *testing.T) {
	tests := []struct {
		name    string
		details []offer.DetailPatch
	}{
		{"missing tier", []offer.DetailPatch{{}}},
		{"unknown tier", []offer.DetailPatch{{Tier: "gold"}}},
		{"duplicate tier", []offer.DetailPatch{{Tier: offer.TierBasic}, {Tier: offer.TierBasic}}},
		{"invalid field", []offer.DetailPatch{{Tier: offer.TierStandard, DeliveryDays: ptr(0)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newOffer(t)
			title := "Changed"
			price := kernel.MustPrice("1")

			details := append([]offer.DetailPatch{{Tier: offer.TierBasic, Price: &price}}, tt.details...)
			err := o.Update(offer.Patch{Title: &title, Details: details})

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
			assert.Equal(t, "Logo design", o.Title())
			assert.Equal(t, "50.00", o.MinPrice().String())
			assert.Equal(t, offer.Tiers(), tiersOf(o))
		})
	}
}

func TestOffer_Update_ClearsImage(t *testing.T) {
	image := "a.png"
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), "Logo", "Logos", &image, specs("1", "2", "3"))
	require.NoError(t, err)

	require.NoError(t, o.Update(offer.Patch{Image: ptr("")}))

	assert.Nil(t, o.Image())
}

func TestRestoreOffer_ChecksTiers(t *testing.T) {
	o := newOffer(t)
	state := offer.OfferState{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		Title:       o.Title(),
		Description: o.Description(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}

	restored, err := offer.RestoreOffer(state, o.Details())
	require.NoError(t, err)
	assert.Equal(t, "50.00", restored.MinPrice().String())

	_, err = offer.RestoreOffer(state, o.Details()[:2])
	require.ErrorIs(t, err, offer.ErrDetailsMustHaveThree)
}

func TestOffer_Validate(t *testing.T) {
	var o offer.Offer

	require.ErrorIs(t, o.Validate(), offer.ErrOfferIsNotConstructed)
}

func ptr[T any](v T) *T {
	return &v
}
