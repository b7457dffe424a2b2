package commands

import (
	"context"

	"marketplace/internal/core/domain/services"
)

// UpdateReviewCommandHandler lets the reviewer revise their review.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
	authz      services.Authorizer
}

func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

func (h UpdateReviewCommandHandler) Handle(ctx context.Context, command UpdateReviewCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceReview, services.ActionUpdate); err != nil {
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

	if err := h.authz.AuthorizeObject(actor, services.ResourceReview, services.ActionUpdate, r); err != nil {
		return err
	}

	if err := r.Revise(command.Rating(), command.Description()); err != nil {
		return err
	}

	if err := repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
