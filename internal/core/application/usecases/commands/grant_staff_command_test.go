package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewGrantStaffCommand(t *testing.T) {
	cmd, err := commands.NewGrantStaffCommand(" admin ")
	require.NoError(t, err)
	assert.Equal(t, "admin", cmd.Username())

	_, err = commands.NewGrantStaffCommand("  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGrantStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGrantStaffCommand("admin")
	require.NoError(t, err)

	user := newTestUser(t, kernel.NewUUID(), identity.RoleCustomer)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByUsername", ctx, "admin").Return(user, nil).Once(),
		repo.On("Update", ctx, user).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewGrantStaffCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, user.IsStaff())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGrantStaffCommandHandler_Handle_AlreadyStaff(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGrantStaffCommand("admin")
	require.NoError(t, err)

	user := newTestUser(t, kernel.NewUUID(), identity.RoleCustomer)
	user.GrantStaff()

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("GetByUsername", ctx, "admin").Return(user, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewGrantStaffCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGrantStaffCommandHandler_Handle_UnknownUser(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewGrantStaffCommand("ghost")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(repo).Once()
	repo.On("GetByUsername", ctx, "ghost").Return(nil, errs.NewObjectNotFoundError("user", "ghost")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewGrantStaffCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestGrantStaffCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUserUoWFactory)
	h := commands.NewGrantStaffCommandHandler(factory)
	err := h.Handle(t.Context(), commands.GrantStaffCommand{})
	require.ErrorIs(t, err, commands.ErrGrantStaffCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
