package identity

import (
	"marketplace/internal/core/domain/model/kernel"
)

// Actor is the identity performing the current action.
// The zero value is an anonymous actor.
type Actor struct {
	userID        kernel.UUID
	role          Role
	staff         bool
	authenticated bool
}

// Anonymous returns an actor with no identity and no role.
func Anonymous() Actor {
	return Actor{}
}

// NewAuthenticatedActor builds an actor from already resolved identity data.
// An invalid user id yields an anonymous actor.
func NewAuthenticatedActor(userID kernel.UUID, role Role, staff bool) Actor {
	if userID.Validate() != nil {
		return Anonymous()
	}
	if role.Validate() != nil {
		role = RoleNone
	}
	return Actor{
		userID:        userID,
		role:          role,
		staff:         staff,
		authenticated: true,
	}
}

// NewActor resolves the actor for a loaded user. A nil user is anonymous,
// a user without a profile is authenticated with RoleNone.
func NewActor(user *User) Actor {
	if user == nil || user.Validate() != nil {
		return Anonymous()
	}
	return NewAuthenticatedActor(user.ID(), user.Role(), user.IsStaff())
}

func (a Actor) IsAuthenticated() bool {
	return a.authenticated
}

func (a Actor) UserID() kernel.UUID {
	return a.userID
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) HasRole(role Role) bool {
	return a.authenticated && role != RoleNone && a.role == role
}

func (a Actor) IsStaff() bool {
	return a.authenticated && a.staff
}

// Is reports whether the actor is the user with the given id.
func (a Actor) Is(userID kernel.UUID) bool {
	return a.authenticated && a.userID.IsEqual(userID)
}

func (a Actor) String() string {
	if !a.authenticated {
		return "anonymous"
	}
	return a.userID.String() + "/" + a.role.String()
}
