package commands

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameIsTaken = errs.NewValueIsInvalidErrorWithCause(
		"username", errors.New("a user with this username already exists"))
	ErrEmailIsTaken = errs.NewValueIsInvalidErrorWithCause(
		"email", errors.New("a user with this email already exists"))
)

// RegisterUserCommandHandler creates the user and its profile in one transaction.
// The password is hashed with bcrypt before the transaction starts.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hashCost   int
}

// NewRegisterUserCommandHandler creates the handler. hashCost is the bcrypt
// cost; values outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory, hashCost int) RegisterUserCommandHandler {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hashCost:   hashCost,
	}
}

func (h RegisterUserCommandHandler) Handle(ctx context.Context, command RegisterUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(command.Password()), h.hashCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := identity.NewUser(
		command.UserID(),
		command.Username(),
		command.Email(),
		string(hash),
		command.Role(),
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

	repo := uow.UserRepository()

	taken, err := repo.ExistsByUsername(ctx, user.Username())
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameIsTaken
	}

	taken, err = repo.ExistsByEmail(ctx, user.Email())
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailIsTaken
	}

	if err := repo.Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
