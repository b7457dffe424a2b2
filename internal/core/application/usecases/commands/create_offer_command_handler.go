package commands

import (
	"context"

	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/services"
)

// CreateOfferCommandHandler publishes offers for business users.
type CreateOfferCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

func NewCreateOfferCommandHandler(uowFactory OrderUoWFactory) CreateOfferCommandHandler {
	return CreateOfferCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

// Handle builds the offer owned by the acting user and stores it with its
// details in one transaction. Invalid input stores nothing.
func (h CreateOfferCommandHandler) Handle(ctx context.Context, command CreateOfferCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOffer, services.ActionCreate); err != nil {
		return err
	}

	o, err := offer.NewOffer(
		command.OfferID(),
		actor.UserID(),
		command.Title(),
		command.Description(),
		command.Image(),
		command.Details(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OfferRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
