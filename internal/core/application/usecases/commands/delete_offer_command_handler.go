package commands

import (
	"context"

	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/services"
)

// DeleteOfferCommandHandler removes an offer and its details. Offers that
// orders point at are kept and the command fails with offer.ErrOfferHasOrders.
type DeleteOfferCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

func NewDeleteOfferCommandHandler(uowFactory OrderUoWFactory) DeleteOfferCommandHandler {
	return DeleteOfferCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h DeleteOfferCommandHandler) Handle(ctx context.Context, command DeleteOfferCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOffer, services.ActionDelete); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	offerRepo := uow.OfferRepository()

	o, err := offerRepo.GetForUpdate(ctx, command.OfferID())
	if err != nil {
		return err
	}

	if err := h.authz.AuthorizeObject(actor, services.ResourceOffer, services.ActionDelete, o); err != nil {
		return err
	}

	hasOrders, err := uow.OrderRepository().ExistsForOffer(ctx, o.ID())
	if err != nil {
		return err
	}
	if hasOrders {
		return offer.ErrOfferHasOrders
	}

	if err := offerRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
