package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository stores reviews. The (reviewer, business user) pair is unique.
type ReviewRepository interface {
	// Add persists a new review. A duplicate pair is reported as review.ErrAlreadyReviewed.
	Add(ctx context.Context, aggregate *review.Review) error

	Update(ctx context.Context, aggregate *review.Review) error

	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetForUpdate loads the review and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*review.Review, error)

	Delete(ctx context.Context, id kernel.UUID) error

	ExistsForPair(ctx context.Context, reviewerID, businessID kernel.UUID) (bool, error)
}
