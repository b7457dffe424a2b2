package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes orders. Only staff may do this.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.authz.Authorize(command.Actor(), services.ResourceOrder, services.ActionDelete); err != nil {
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

	if err := repo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
