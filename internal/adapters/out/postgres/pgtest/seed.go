package pgtest

import (
	"context"

	"marketplace/internal/adapters/out/postgres/offerrepo"
	"marketplace/internal/adapters/out/postgres/userrepo"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
)

// NopTracker discards tracked aggregates.
type NopTracker struct{}

func (NopTracker) TrackAggregate(kernel.UUID, any) {}

// SeedUser stores a user named name with the given role.
func (d *Database) SeedUser(ctx context.Context, name string, role identity.Role) (*identity.User, error) {
	user, err := identity.NewUser(kernel.NewUUID(), name, name+"@example.com", "hash", role)
	if err != nil {
		return nil, err
	}
	if err := userrepo.NewGormUserRepository(d.DB, NopTracker{}).Add(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// NewOffer builds an offer of owner with the given basic, standard and premium prices.
func NewOffer(owner kernel.UUID, title string, basic, standard, premium string) (*offer.Offer, error) {
	return offer.NewOffer(kernel.NewUUID(), owner, title, title+" description", nil, []offer.DetailSpec{
		{Tier: offer.TierBasic, Title: "Basic", Revisions: 1, DeliveryDays: 7, Price: kernel.MustPrice(basic), Features: []string{"Logo"}},
		{Tier: offer.TierStandard, Title: "Standard", Revisions: 3, DeliveryDays: 5, Price: kernel.MustPrice(standard), Features: []string{"Logo", "Card"}},
		{Tier: offer.TierPremium, Title: "Premium", Revisions: 10, DeliveryDays: 2, Price: kernel.MustPrice(premium), Features: []string{"Logo", "Card", "Flyer"}},
	})
}

// SeedOffer stores an offer built by NewOffer.
func (d *Database) SeedOffer(ctx context.Context, owner kernel.UUID, title string, basic, standard, premium string) (*offer.Offer, error) {
	o, err := NewOffer(owner, title, basic, standard, premium)
	if err != nil {
		return nil, err
	}
	if err := offerrepo.NewGormOfferRepository(d.DB, NopTracker{}).Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
