package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	business := newTestUser(t, kernel.NewUUID(), identity.RoleBusiness)

	cmd, err := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), business.ID(), 5, "Great")
	require.NoError(t, err)

	var stored *review.Review
	userRepo := new(MockUserRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, business.ID()).Return(business, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForPair", ctx, actor.UserID(), business.ID()).Return(false, nil).Once(),
		reviewRepo.On("Add", ctx, mock.AnythingOfType("*review.Review")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*review.Review) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.True(t, stored.IsWrittenBy(actor.UserID()))
	assert.Equal(t, business.ID(), stored.BusinessID())
	assert.Equal(t, 5, stored.Rating())
	uow.AssertExpectations(t)
}

func TestCreateReviewCommandHandler_Handle_SecondReviewForPair(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	business := newTestUser(t, kernel.NewUUID(), identity.RoleBusiness)

	cmd, err := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), business.ID(), 3, "Again")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, business.ID()).Return(business, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForPair", ctx, actor.UserID(), business.ID()).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateReviewCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, review.ErrAlreadyReviewed)
	assert.True(t, errs.IsValidation(err))
	reviewRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateReviewCommandHandler_Handle_TargetIsCustomer(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	target := newTestUser(t, kernel.NewUUID(), identity.RoleCustomer)

	cmd, err := commands.NewCreateReviewCommand(actor, kernel.NewUUID(), target.ID(), 3, "Hm")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", ctx, target.ID()).Return(target, nil).Once()
	uow.On("ReviewRepository").Return(reviewRepo).Once()
	reviewRepo.On("ExistsForPair", ctx, actor.UserID(), target.ID()).Return(false, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), review.ErrTargetIsNotBusiness)
}

func TestCreateReviewCommandHandler_Handle_UnknownBusinessUser(t *testing.T) {
	ctx := t.Context()
	businessID := kernel.NewUUID()
	cmd, err := commands.NewCreateReviewCommand(customerActor(), kernel.NewUUID(), businessID, 4, "Who")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, businessID).Return(nil, errs.NewObjectNotFoundError("user", businessID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrUnknownBusinessUser)
}

func TestCreateReviewCommandHandler_Handle_BusinessIsForbidden(t *testing.T) {
	cmd, err := commands.NewCreateReviewCommand(businessActor(), kernel.NewUUID(), kernel.NewUUID(), 4, "Nice")
	require.NoError(t, err)

	factory := new(MockReviewUoWFactory)
	h := commands.NewCreateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateReviewCommandHandler_Handle_ReviewerRevises(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newTestReview(t, actor.UserID())
	businessID := r.BusinessID()

	rating := 2
	cmd, err := commands.NewUpdateReviewCommand(actor, r.ID(), &rating, strPtr("Changed my mind"))
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		repo.On("Update", ctx, r).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, 2, r.Rating())
	assert.Equal(t, "Changed my mind", r.Description())
	assert.Equal(t, businessID, r.BusinessID())
	assert.True(t, r.IsWrittenBy(actor.UserID()))
}

func TestUpdateReviewCommandHandler_Handle_OtherUserIsForbidden(t *testing.T) {
	ctx := t.Context()
	r := newTestReview(t, kernel.NewUUID())

	rating := 1
	cmd, err := commands.NewUpdateReviewCommand(customerActor(), r.ID(), &rating, nil)
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrForbidden)
	assert.Equal(t, 4, r.Rating())
}

func TestUpdateReviewCommandHandler_Handle_RatingOutOfRange(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newTestReview(t, actor.UserID())

	rating := 6
	cmd, err := commands.NewUpdateReviewCommand(actor, r.ID(), &rating, strPtr("Ignored"))
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewUpdateReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 4, r.Rating())
	assert.Equal(t, "Good work", r.Description())
}

func TestDeleteReviewCommandHandler_Handle_Reviewer(t *testing.T) {
	ctx := t.Context()
	actor := customerActor()
	r := newTestReview(t, actor.UserID())
	cmd, err := commands.NewDeleteReviewCommand(actor, r.ID())
	require.NoError(t, err)

	repo := new(MockReviewRepository)
	uow := new(MockUoW)
	factory := new(MockReviewUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReviewRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, r.ID()).Return(r, nil).Once(),
		repo.On("Delete", ctx, r.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestDeleteReviewCommandHandler_Handle_Anonymous(t *testing.T) {
	cmd, err := commands.NewDeleteReviewCommand(identity.Anonymous(), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockReviewUoWFactory)
	h := commands.NewDeleteReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(t.Context(), cmd), errs.ErrAuthenticationRequired)
	factory.AssertNotCalled(t, "Create")
}
