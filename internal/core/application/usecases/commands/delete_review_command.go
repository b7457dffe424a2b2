package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrDeleteReviewCommandIsNotConstructed = errors.New(
	"DeleteReviewCommand must be created via NewDeleteReviewCommand constructor",
)

type DeleteReviewCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteReviewCommand(actor identity.Actor, reviewID kernel.UUID) (DeleteReviewCommand, error) {
	if err := reviewID.Validate(); err != nil {
		return DeleteReviewCommand{}, err
	}

	return DeleteReviewCommand{
		actor:    actor,
		reviewID: reviewID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteReviewCommand) Validate() error {
	return c.guard.Validate(ErrDeleteReviewCommandIsNotConstructed)
}

func (c DeleteReviewCommand) Actor() identity.Actor {
	return c.actor
}

func (c DeleteReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}
