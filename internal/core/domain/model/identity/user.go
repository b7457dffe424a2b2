package identity

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const maxUsernameLength = 150

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrProfileIsRequired    = errs.NewValueIsRequiredError("profile")
)

// User is the aggregate root of an account and its profile.
//
// Invariants:
//   - id, username, email and password hash are always set
//   - exactly one Profile is attached from construction on
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	firstName    string
	lastName     string
	isStaff      bool
	profile      *Profile
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser registers an account with the given role. The profile is built here,
// in the same step, so persisting the returned user persists both.
//
// Example:
//
//	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
//	user, err := identity.NewUser(kernel.NewUUID(), "anna", "anna@example.com", string(hash), identity.RoleBusiness)
func NewUser(id kernel.UUID, username, email, passwordHash string, role Role) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	profile, profileErr := newProfile(role, now)

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
		user.setEmail(email),
		user.setPasswordHash(passwordHash),
		profileErr,
	); err != nil {
		return nil, err
	}

	user.profile = profile
	return user, nil
}

// UserState is the persisted form of a user used by RestoreUser.
type UserState struct {
	ID           kernel.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	IsStaff      bool
	CreatedAt    time.Time
}

// RestoreUser rebuilds a persisted user. A missing profile is an error.
func RestoreUser(state UserState, profile *Profile) (*User, error) {
	if profile == nil {
		return nil, ErrProfileIsRequired
	}

	user := &User{
		firstName: state.FirstName,
		lastName:  state.LastName,
		isStaff:   state.IsStaff,
		profile:   profile,
		createdAt: state.CreatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(state.ID),
		user.setUsername(state.Username),
		user.setEmail(state.Email),
		user.setPasswordHash(state.PasswordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate ensures the user was built by NewUser or RestoreUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) Profile() *Profile {
	return u.profile
}

// Role is the role of the attached profile.
func (u *User) Role() Role {
	if u.profile == nil {
		return RoleNone
	}
	return u.profile.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ProfilePatch lists the profile fields a user may change. Nil fields are left alone.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	File         *string
	Location     *string
	Tel          *string
	Description  *string
	WorkingHours *string
}

// UpdateProfile applies patch. Nothing changes if any field is invalid.
func (u *User) UpdateProfile(patch ProfilePatch) error {
	if patch.Email != nil {
		if err := validateEmail(*patch.Email); err != nil {
			return err
		}
		u.email = strings.TrimSpace(*patch.Email)
	}

	assign(&u.firstName, patch.FirstName)
	assign(&u.lastName, patch.LastName)
	assign(&u.profile.file, patch.File)
	assign(&u.profile.location, patch.Location)
	assign(&u.profile.tel, patch.Tel)
	assign(&u.profile.description, patch.Description)
	assign(&u.profile.workingHours, patch.WorkingHours)
	return nil
}

// GrantStaff gives the user staff rights. Granting twice is a no-op.
func (u *User) GrantStaff() {
	u.isStaff = true
}

func assign(dst *string, value *string) {
	if value != nil {
		*dst = *value
	}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) > maxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username", len(username), 1, maxUsernameLength)
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	u.email = strings.TrimSpace(email)
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid address", email))
	}
	return nil
}
