package identity_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_CreatesProfile(t *testing.T) {
	id := kernel.NewUUID()

	user, err := identity.NewUser(id, "anna", "anna@example.com", "hash", identity.RoleBusiness)

	require.NoError(t, err)
	require.NoError(t, user.Validate())
	assert.Equal(t, id, user.ID())
	assert.Equal(t, "anna", user.Username())
	require.NotNil(t, user.Profile())
	assert.Equal(t, identity.RoleBusiness, user.Profile().Role())
	assert.Equal(t, identity.RoleBusiness, user.Role())
	assert.False(t, user.IsStaff())
	assert.Equal(t, identity.ProfileDetails{}, user.Profile().Details())
}

func TestNewUser_ReportsAllInvalidFields(t *testing.T) {
	_, err := identity.NewUser(kernel.UUID{}, " ", "not-an-email", "", identity.Role("admin"))

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.True(t, errs.IsValidation(err))
	for _, field := range []string{"username", "email", "password", "type"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestNewUser_RequiresRole(t *testing.T) {
	_, err := identity.NewUser(kernel.NewUUID(), "anna", "anna@example.com", "hash", identity.RoleNone)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestoreUser_RequiresProfile(t *testing.T) {
	_, err := identity.RestoreUser(identity.UserState{
		ID:           kernel.NewUUID(),
		Username:     "anna",
		Email:        "anna@example.com",
		PasswordHash: "hash",
	}, nil)

	require.ErrorIs(t, err, identity.ErrProfileIsRequired)
}

func TestUser_UpdateProfile(t *testing.T) {
	user, err := identity.NewUser(kernel.NewUUID(), "anna", "anna@example.com", "hash", identity.RoleBusiness)
	require.NoError(t, err)

	location := "Berlin"
	first := "Anna"
	require.NoError(t, user.UpdateProfile(identity.ProfilePatch{FirstName: &first, Location: &location}))

	assert.Equal(t, "Anna", user.FirstName())
	assert.Equal(t, "Berlin", user.Profile().Details().Location)
	assert.Equal(t, "anna@example.com", user.Email())
	assert.Equal(t, identity.RoleBusiness, user.Role())

	t.Run("invalid email leaves user unchanged", func(t *testing.T) {
		bad := "nope"
		tel := "12345"
		err := user.UpdateProfile(identity.ProfilePatch{Email: &bad, Tel: &tel})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "anna@example.com", user.Email())
		assert.Empty(t, user.Profile().Details().Tel)
	})
}

func TestUser_GrantStaff(t *testing.T) {
	user, err := identity.NewUser(kernel.NewUUID(), "admin", "admin@example.com", "hash", identity.RoleCustomer)
	require.NoError(t, err)

	user.GrantStaff()
	user.GrantStaff()

	assert.True(t, user.IsStaff())
	assert.True(t, identity.NewActor(user).IsStaff())
}

func TestRestoreProfile(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	details := identity.ProfileDetails{Location: "Hamburg", Tel: "040", WorkingHours: "9-17"}

	profile, err := identity.RestoreProfile(identity.RoleCustomer, details, created)

	require.NoError(t, err)
	assert.Equal(t, identity.RoleCustomer, profile.Role())
	assert.Equal(t, details, profile.Details())
	assert.Equal(t, created, profile.CreatedAt())
}

func TestParseRole(t *testing.T) {
	role, err := identity.ParseRole("customer")
	require.NoError(t, err)
	assert.Equal(t, identity.RoleCustomer, role)

	_, err = identity.ParseRole("staff")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
