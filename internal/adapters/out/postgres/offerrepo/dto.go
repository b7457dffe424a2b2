// Package offerrepo persists offers and their three details.
package offerrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type OfferDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Description string           `gorm:"type:text;not null"`
	Image       *string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time        `gorm:"not null"`
	UpdatedAt   time.Time        `gorm:"not null;index"`
	Details     []OfferDetailDTO `gorm:"foreignKey:OfferID"`
}

func (OfferDTO) TableName() string {
	return "offers"
}

// OfferDetailDTO is one tier row. (offer_id, offer_type) is unique.
type OfferDetailDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OfferID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_offer_details_tier"`
	OfferType          string          `gorm:"type:varchar(16);not null;uniqueIndex:idx_offer_details_tier"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           pq.StringArray  `gorm:"type:text[];not null"`
}

func (OfferDetailDTO) TableName() string {
	return "offer_details"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	id := aggregate.ID().Bytes()
	details := make([]OfferDetailDTO, 0, len(aggregate.Details()))
	for _, d := range aggregate.Details() {
		details = append(details, detailFromDomain(id, d))
	}

	return OfferDTO{
		ID:          id,
		OwnerID:     aggregate.OwnerID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Image:       aggregate.Image(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Details:     details,
	}
}

func detailFromDomain(offerID uuid.UUID, d *offer.Detail) OfferDetailDTO {
	return OfferDetailDTO{
		ID:                 d.ID().Bytes(),
		OfferID:            offerID,
		OfferType:          string(d.Tier()),
		Title:              d.Title(),
		Revisions:          d.Revisions(),
		DeliveryTimeInDays: d.DeliveryDays(),
		Price:              d.Price().Decimal(),
		Features:           pq.StringArray(d.Features()),
	}
}

// ToDomain rebuilds an offer from a row loaded with its details.
func ToDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	details := make([]*offer.Detail, 0, len(dto.Details))
	for _, d := range dto.Details {
		detail, detailErr := DetailToDomain(d)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return offer.RestoreOffer(offer.OfferState{
		ID:          id,
		OwnerID:     ownerID,
		Title:       dto.Title,
		Description: dto.Description,
		Image:       dto.Image,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}, details)
}

func DetailToDomain(dto OfferDetailDTO) (*offer.Detail, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return offer.RestoreDetail(id, offer.DetailSpec{
		Tier:         offer.Tier(dto.OfferType),
		Title:        dto.Title,
		Revisions:    dto.Revisions,
		DeliveryDays: dto.DeliveryTimeInDays,
		Price:        price,
		Features:     []string(dto.Features),
	})
}
