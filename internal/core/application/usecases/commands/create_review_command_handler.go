package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ErrUnknownBusinessUser is returned when the reviewed user does not exist.
var ErrUnknownBusinessUser = errs.NewValueIsInvalidErrorWithCause(
	"business_user", errors.New("user does not exist"))

// CreateReviewCommandHandler records a customer's review of a business user.
type CreateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	authz      services.Authorizer
}

func NewCreateReviewCommandHandler(uowFactory ReviewUoWFactory) CreateReviewCommandHandler {
	return CreateReviewCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

// Handle checks the pair against the store before inserting. A concurrent
// insert of the same pair is caught by the unique index and reported the same way.
func (h CreateReviewCommandHandler) Handle(ctx context.Context, command CreateReviewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceReview, services.ActionCreate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	business, err := uow.UserRepository().Get(ctx, command.BusinessID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUnknownBusinessUser
	}
	if err != nil {
		return err
	}

	repo := uow.ReviewRepository()

	exists, err := repo.ExistsForPair(ctx, actor.UserID(), business.ID())
	if err != nil {
		return err
	}
	if exists {
		return review.ErrAlreadyReviewed
	}

	r, err := review.NewReview(
		command.ReviewID(),
		actor.UserID(),
		business,
		command.Rating(),
		command.Description(),
	)
	if err != nil {
		return err
	}

	if err := repo.Add(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
