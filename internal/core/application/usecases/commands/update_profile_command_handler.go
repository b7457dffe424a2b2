package commands

import (
	"context"
	"strings"

	"marketplace/internal/core/domain/services"
)

// UpdateProfileCommandHandler lets a user edit their own profile.
type UpdateProfileCommandHandler struct {
	uowFactory UserUoWFactory
	authz      services.Authorizer
}

func NewUpdateProfileCommandHandler(uowFactory UserUoWFactory) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

// Handle locks the user row, checks ownership and applies the patch.
// A changed email must not belong to another user.
func (h UpdateProfileCommandHandler) Handle(ctx context.Context, command UpdateProfileCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceProfile, services.ActionUpdate); err != nil {
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

	user, err := repo.GetForUpdate(ctx, command.UserID())
	if err != nil {
		return err
	}

	if err := h.authz.AuthorizeObject(actor, services.ResourceProfile, services.ActionUpdate, user); err != nil {
		return err
	}

	patch := command.Patch()
	if patch.Email != nil && !strings.EqualFold(strings.TrimSpace(*patch.Email), user.Email()) {
		taken, err := repo.ExistsByEmail(ctx, strings.TrimSpace(*patch.Email))
		if err != nil {
			return err
		}
		if taken {
			return ErrEmailIsTaken
		}
	}

	if err := user.UpdateProfile(patch); err != nil {
		return err
	}

	if err := repo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
