package offerrepo

import (
	"context"
	"fmt"

	"marketplace/internal/adapters/out/postgres/pgutil"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOfferRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOfferRepository(db *gorm.DB, tracker aggregateTracker) *GormOfferRepository {
	return &GormOfferRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the offer and its details.
func (r *GormOfferRepository) Add(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgutil.IsDuplicate(err) {
			return offer.ErrDetailsMustHaveThree
		}
		return fmt.Errorf("insert offer: %w", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the offer row and every detail row. Detail ids never change,
// so each detail is updated by primary key.
func (r *GormOfferRepository) Update(ctx context.Context, aggregate *offer.Offer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OfferDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"title":       dto.Title,
		"description": dto.Description,
		"image":       dto.Image,
		"updated_at":  dto.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("update offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offer", aggregate.ID().String())
	}

	for _, d := range dto.Details {
		if err := db.Model(&OfferDetailDTO{}).Where("id = ? AND offer_id = ?", d.ID, dto.ID).Updates(map[string]any{
			"title":                 d.Title,
			"revisions":             d.Revisions,
			"delivery_time_in_days": d.DeliveryTimeInDays,
			"price":                 d.Price,
			"features":              d.Features,
		}).Error; err != nil {
			return fmt.Errorf("update offer detail %s: %w", d.OfferType, err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.get(r.db.WithContext(ctx).Clauses(pgutil.ForUpdate()), id)
}

func (r *GormOfferRepository) get(db *gorm.DB, id kernel.UUID) (*offer.Offer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OfferDTO
	if err := db.Preload("Details").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if pgutil.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("offer", id.String())
		}
		return nil, fmt.Errorf("select offer: %w", err)
	}

	return ToDomain(dto)
}

func (r *GormOfferRepository) GetByDetailID(ctx context.Context, detailID kernel.UUID) (*offer.Offer, error) {
	if err := detailID.Validate(); err != nil {
		return nil, err
	}

	var detail OfferDetailDTO
	if err := r.db.WithContext(ctx).Select("offer_id").First(&detail, "id = ?", detailID.Bytes()).Error; err != nil {
		if pgutil.IsNotFound(err) {
			return nil, errs.NewObjectNotFoundError("offer_detail", detailID.String())
		}
		return nil, fmt.Errorf("select offer detail: %w", err)
	}

	offerID, err := kernel.UUIDFromBytes(detail.OfferID[:])
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, offerID)
}

// Delete removes the offer; the database cascades to its details. An order
// referencing a detail makes the delete fail with offer.ErrOfferHasOrders.
func (r *GormOfferRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OfferDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgutil.IsForeignKeyViolation(result.Error) {
			return offer.ErrOfferHasOrders
		}
		return fmt.Errorf("delete offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("offer", id.String())
	}
	return nil
}
