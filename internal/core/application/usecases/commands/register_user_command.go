package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordLength = 72
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordsDoNotMatch = errs.NewValueIsInvalidErrorWithCause(
		"repeated_password", errors.New("passwords do not match"))
)

// RegisterUserCommand creates a user account together with its profile.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "anna", "anna@example.com", "s3cret-pw", "s3cret-pw", "business")
//	if err != nil {
//	    return err
//	}
//	err = NewRegisterUserCommandHandler(uowFactory, bcrypt.DefaultCost).Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	password string
	role     identity.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand checks the registration form. All field errors are
// reported together.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password, repeatedPassword, roleName string,
) (RegisterUserCommand, error) {
	c := RegisterUserCommand{
		username: strings.TrimSpace(username),
		email:    strings.TrimSpace(email),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setUserID(userID),
		c.setPassword(password, repeatedPassword),
		c.setRole(roleName),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return c, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password is the plain text password. It never leaves the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c RegisterUserCommand) Role() identity.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.userID = id
	return nil
}

func (c *RegisterUserCommand) setPassword(password, repeated string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", len(password), MinPasswordLength, MaxPasswordLength)
	}
	if password != repeated {
		return ErrPasswordsDoNotMatch
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(name string) error {
	role, err := identity.ParseRole(name)
	if err != nil {
		return err
	}
	c.role = role
	return nil
}
