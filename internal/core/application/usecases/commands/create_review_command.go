package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand rates a business user. Rating bounds are checked by review.NewReview.
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	actor       identity.Actor
	reviewID    kernel.UUID
	businessID  kernel.UUID
	rating      int
	description string

	guard guard.ConstructorGuard
}

func NewCreateReviewCommand(
	actor identity.Actor,
	reviewID, businessID kernel.UUID,
	rating int,
	description string,
) (CreateReviewCommand, error) {
	c := CreateReviewCommand{
		actor:       actor,
		rating:      rating,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setReviewID(reviewID),
		c.setBusinessID(businessID),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return c, nil
}

func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

func (c CreateReviewCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c CreateReviewCommand) BusinessID() kernel.UUID {
	return c.businessID
}

func (c CreateReviewCommand) Rating() int {
	return c.rating
}

func (c CreateReviewCommand) Description() string {
	return c.description
}

func (c *CreateReviewCommand) setReviewID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.reviewID = id
	return nil
}

func (c *CreateReviewCommand) setBusinessID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("business_user", err)
	}
	c.businessID = id
	return nil
}
