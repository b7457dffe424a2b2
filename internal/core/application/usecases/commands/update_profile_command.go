package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand patches the profile of userID on behalf of actor.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	userID kernel.UUID
	patch  identity.ProfilePatch

	guard guard.ConstructorGuard
}

func NewUpdateProfileCommand(
	actor identity.Actor,
	userID kernel.UUID,
	patch identity.ProfilePatch,
) (UpdateProfileCommand, error) {
	if err := userID.Validate(); err != nil {
		return UpdateProfileCommand{}, err
	}

	return UpdateProfileCommand{
		actor:  actor,
		userID: userID,
		patch:  patch,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

func (c UpdateProfileCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateProfileCommand) UserID() kernel.UUID {
	return c.userID
}

func (c UpdateProfileCommand) Patch() identity.ProfilePatch {
	return c.patch
}
