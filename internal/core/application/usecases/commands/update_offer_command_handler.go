package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateOfferCommandHandler lets the owner edit an offer. The tier set never changes.
type UpdateOfferCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

func NewUpdateOfferCommandHandler(uowFactory OrderUoWFactory) UpdateOfferCommandHandler {
	return UpdateOfferCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h UpdateOfferCommandHandler) Handle(ctx context.Context, command UpdateOfferCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOffer, services.ActionUpdate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OfferRepository()

	o, err := repo.GetForUpdate(ctx, command.OfferID())
	if err != nil {
		return err
	}

	if err := h.authz.AuthorizeObject(actor, services.ResourceOffer, services.ActionUpdate, o); err != nil {
		return err
	}

	if err := o.Update(command.Patch()); err != nil {
		return err
	}

	if err := repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
