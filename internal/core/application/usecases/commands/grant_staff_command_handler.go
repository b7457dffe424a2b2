package commands

import (
	"context"
)

// GrantStaffCommandHandler promotes a registered user to staff.
type GrantStaffCommandHandler struct {
	uowFactory UserUoWFactory
}

func NewGrantStaffCommandHandler(uowFactory UserUoWFactory) GrantStaffCommandHandler {
	return GrantStaffCommandHandler{uowFactory: uowFactory}
}

func (h GrantStaffCommandHandler) Handle(ctx context.Context, command GrantStaffCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()

	user, err := repo.GetByUsername(ctx, command.Username())
	if err != nil {
		return err
	}
	if user.IsStaff() {
		return nil
	}

	user.GrantStaff()
	if err := repo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
