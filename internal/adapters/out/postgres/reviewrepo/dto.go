// Package reviewrepo persists reviews. The (reviewer, business user) pair is
// a unique index, the last line of defence against double reviews.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

type ReviewDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReviewerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_pair"`
	BusinessUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_pair;index"`
	Rating         int       `gorm:"type:smallint;not null"`
	Description    string    `gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null;index"`
}

func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:             aggregate.ID().Bytes(),
		ReviewerID:     aggregate.ReviewerID().Bytes(),
		BusinessUserID: aggregate.BusinessID().Bytes(),
		Rating:         aggregate.Rating(),
		Description:    aggregate.Description(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
	}
}

func ToDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	reviewerID, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return nil, err
	}
	businessID, err := kernel.UUIDFromBytes(dto.BusinessUserID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(review.ReviewState{
		ID:          id,
		ReviewerID:  reviewerID,
		BusinessID:  businessID,
		Rating:      dto.Rating,
		Description: dto.Description,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	})
}
