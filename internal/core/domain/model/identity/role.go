package identity

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the marketplace role stored on a Profile.
type Role string

const (
	// RoleNone is held by anonymous actors and by accounts whose profile could not be resolved.
	RoleNone     Role = ""
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

// ParseRole converts the registration "type" field into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return RoleNone, err
	}
	return r, nil
}

// Validate accepts only customer and business.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleBusiness:
		return nil
	case RoleNone:
		return errs.NewValueIsRequiredError("type")
	default:
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
