package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateOrderStatusCommandHandler lets the business user of an order
// complete or cancel it.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOrder, services.ActionUpdate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err := h.authz.AuthorizeObject(actor, services.ResourceOrder, services.ActionUpdate, o); err != nil {
		return err
	}

	if err := o.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err := repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
