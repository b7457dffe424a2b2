package reviewrepo

import (
	"context"
	"fmt"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a review. A concurrent insert of the same pair loses on the
// unique index and gets review.ErrAlreadyReviewed, as if the pre-check had caught it.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgutil.IsDuplicate(err) {
			return review.ErrAlreadyReviewed
		}
		return fmt.Errorf("insert review: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"rating":      dto.Rating,
		"description": dto.Description,
		"updated_at":  dto.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("update review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormReviewRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	return r.get(r.db.WithContext(ctx).Clauses(pgutil.ForUpdate()), id)
}

func (r *GormReviewRepository) get(db *gorm.DB, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgutil.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("review", id.String())
		}
		return nil, fmt.Errorf("select review: %w", err)
	}

	return ToDomain(dto)
}

func (r *GormReviewRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ReviewDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("review", id.String())
	}
	return nil
}

func (r *GormReviewRepository) ExistsForPair(ctx context.Context, reviewerID, businessID kernel.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("reviewer_id = ? AND business_user_id = ?", reviewerID.Bytes(), businessID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count reviews of pair: %w", err)
	}
	return count > 0, nil
}
