package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// DeleteReviewCommandHandler lets the reviewer withdraw their review.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	authz      services.Authorizer
}

func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h DeleteReviewCommandHandler) Handle(ctx context.Context, command DeleteReviewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceReview, services.ActionDelete); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReviewRepository()

	r, err := repo.GetForUpdate(ctx, command.ReviewID())
	if err != nil {
		return err
	}

	if err := h.authz.AuthorizeObject(actor, services.ResourceReview, services.ActionDelete, r); err != nil {
		return err
	}

	if err := repo.Delete(ctx, r.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
