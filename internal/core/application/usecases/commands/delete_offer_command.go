package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteOfferCommandIsNotConstructed = errors.New(
	"DeleteOfferCommand must be created via NewDeleteOfferCommand constructor",
)

type DeleteOfferCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteOfferCommand(actor identity.Actor, offerID kernel.UUID) (DeleteOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return DeleteOfferCommand{}, err
	}

	return DeleteOfferCommand{
		actor:   actor,
		offerID: offerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOfferCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOfferCommandIsNotConstructed)
}

func (c DeleteOfferCommand) Actor() identity.Actor {
	return c.actor
}

func (c DeleteOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}
