package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateReviewCommandIsNotConstructed = errors.New(
	"UpdateReviewCommand must be created via NewUpdateReviewCommand constructor",
)

// UpdateReviewCommand changes rating and description. Nil fields are left alone.
type UpdateReviewCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	reviewID    kernel.UUID
	rating      *int
	description *string

	guard guard.ConstructorGuard
}

func NewUpdateReviewCommand(
	actor identity.Actor,
	reviewID kernel.UUID,
	rating *int,
	description *string,
) (UpdateReviewCommand, error) {
	if err := reviewID.Validate(); err != nil {
		return UpdateReviewCommand{}, err
	}

	return UpdateReviewCommand{
		actor:       actor,
		reviewID:    reviewID,
		rating:      rating,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateReviewCommand) Validate() error {
	return c.guard.Validate(ErrUpdateReviewCommandIsNotConstructed)
}

func (c UpdateReviewCommand) Actor() identity.Actor {
	return c.actor
}

func (c UpdateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c UpdateReviewCommand) Rating() *int {
	return c.rating
}

func (c UpdateReviewCommand) Description() *string {
	return c.description
}
