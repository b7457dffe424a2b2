// Package review implements the Review aggregate: a customer's rating of a
// business user. One reviewer may review a given business user only once;
// the store enforces the pair with a unique index.
package review

import (
	"errors"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview constructor")
	ErrAlreadyReviewed        = errs.NewValueIsInvalidErrorWithCause(
		"business_user", errors.New("you have already reviewed this business user"))
	ErrTargetIsNotBusiness = errs.NewValueIsInvalidErrorWithCause(
		"business_user", errors.New("only business users can be reviewed"))
	ErrSelfReview = errs.NewValueIsInvalidErrorWithCause(
		"business_user", errors.New("you cannot review yourself"))
)

type Review struct {
	id          kernel.UUID
	reviewerID  kernel.UUID
	businessID  kernel.UUID
	rating      int
	description string
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewReview records reviewerID's rating of business. business must hold a
// business profile. Pair uniqueness is checked by the caller against the store.
func NewReview(id, reviewerID kernel.UUID, business *identity.User, rating int, description string) (*Review, error) {
	if business == nil {
		return nil, errs.NewValueIsRequiredError("business_user")
	}
	if business.Role() != identity.RoleBusiness {
		return nil, ErrTargetIsNotBusiness
	}
	if business.ID().IsEqual(reviewerID) {
		return nil, ErrSelfReview
	}

	now := time.Now().UTC()
	r := &Review{
		businessID: business.ID(),
		createdAt:  now,
		updatedAt:  now,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setReviewerID(reviewerID),
		r.setRating(rating),
		r.setDescription(description),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// ReviewState is the persisted form of a review used by RestoreReview.
type ReviewState struct {
	ID          kernel.UUID
	ReviewerID  kernel.UUID
	BusinessID  kernel.UUID
	Rating      int
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func RestoreReview(state ReviewState) (*Review, error) {
	r := &Review{
		createdAt: state.CreatedAt,
		updatedAt: state.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	var businessErr error
	if err := state.BusinessID.Validate(); err != nil {
		businessErr = errs.NewValueIsRequiredErrorWithCause("business_user", err)
	}
	r.businessID = state.BusinessID

	if err := errors.Join(
		r.setID(state.ID),
		r.setReviewerID(state.ReviewerID),
		businessErr,
		r.setRating(state.Rating),
		r.setDescription(state.Description),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Review) Validate() error {
	if r == nil {
		return ErrReviewIsNotConstructed
	}
	return r.guard.Validate(ErrReviewIsNotConstructed)
}

func (r *Review) ID() kernel.UUID {
	return r.id
}

func (r *Review) ReviewerID() kernel.UUID {
	return r.reviewerID
}

func (r *Review) BusinessID() kernel.UUID {
	return r.businessID
}

func (r *Review) Rating() int {
	return r.rating
}

func (r *Review) Description() string {
	return r.description
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) IsWrittenBy(userID kernel.UUID) bool {
	return r.reviewerID.IsEqual(userID)
}

// Revise changes rating and description; nothing else about a review can change.
// The review is unchanged on error.
func (r *Review) Revise(rating *int, description *string) error {
	staged := *r
	var errList []error
	if rating != nil {
		errList = append(errList, staged.setRating(*rating))
	}
	if description != nil {
		errList = append(errList, staged.setDescription(*description))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	staged.updatedAt = time.Now().UTC()
	*r = staged
	return nil
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setReviewerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("reviewer", err)
	}
	r.reviewerID = id
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = rating
	return nil
}

func (r *Review) setDescription(description string) error {
	r.description = strings.TrimSpace(description)
	return nil
}
