package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGrantStaffCommandIsNotConstructed = errors.New(
	"GrantStaffCommand must be created via NewGrantStaffCommand constructor",
)

// GrantStaffCommand marks an existing account as staff. It is an operator
// action and is not exposed over HTTP.
type GrantStaffCommand struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

func NewGrantStaffCommand(username string) (GrantStaffCommand, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return GrantStaffCommand{}, errs.NewValueIsRequiredError("username")
	}

	return GrantStaffCommand{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c GrantStaffCommand) Validate() error {
	return c.guard.Validate(ErrGrantStaffCommandIsNotConstructed)
}

func (c GrantStaffCommand) Username() string {
	return c.username
}
