package commands

import (
	"errors"
	"slices"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOfferCommandIsNotConstructed = errors.New(
	"CreateOfferCommand must be created via NewCreateOfferCommand constructor",
)

// CreateOfferCommand publishes a new offer with its three details.
// Field rules live in offer.NewOffer; the command only carries the input.
//
// Example:
//
//	cmd, err := NewCreateOfferCommand(actor, kernel.NewUUID(), "Logo design", "Vector logos", nil, specs)
//	if err != nil {
//	    return err
//	}
//	err = NewCreateOfferCommandHandler(uowFactory).Handle(ctx, cmd)
type CreateOfferCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	offerID     kernel.UUID
	title       string
	description string
	image       *string
	details     []offer.DetailSpec

	guard guard.ConstructorGuard
}

func NewCreateOfferCommand(
	actor identity.Actor,
	offerID kernel.UUID,
	title, description string,
	image *string,
	details []offer.DetailSpec,
) (CreateOfferCommand, error) {
	if err := offerID.Validate(); err != nil {
		return CreateOfferCommand{}, err
	}

	return CreateOfferCommand{
		actor:       actor,
		offerID:     offerID,
		title:       title,
		description: description,
		image:       image,
		details:     slices.Clone(details),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOfferCommand) Validate() error {
	return c.guard.Validate(ErrCreateOfferCommandIsNotConstructed)
}

func (c CreateOfferCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c CreateOfferCommand) Title() string {
	return c.title
}

func (c CreateOfferCommand) Description() string {
	return c.description
}

func (c CreateOfferCommand) Image() *string {
	return c.image
}

func (c CreateOfferCommand) Details() []offer.DetailSpec {
	return slices.Clone(c.details)
}
