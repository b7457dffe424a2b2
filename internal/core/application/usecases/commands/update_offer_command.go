package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOfferCommandIsNotConstructed = errors.New(
	"UpdateOfferCommand must be created via NewUpdateOfferCommand constructor",
)

// UpdateOfferCommand applies a partial update to an offer and its details.
type UpdateOfferCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	offerID kernel.UUID
	patch   offer.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOfferCommand(actor identity.Actor, offerID kernel.UUID, patch offer.Patch) (UpdateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return UpdateOfferCommand{}, err
	}

	return UpdateOfferCommand{
		actor:   actor,
		offerID: offerID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOfferCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOfferCommandIsNotConstructed)
}

func (c UpdateOfferCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c UpdateOfferCommand) Patch() offer.Patch {
	return c.patch
}
