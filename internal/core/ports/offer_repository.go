package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
)

// OfferRepository stores offers with their three details.
type OfferRepository interface {
	// Add persists the offer and all its details in one write.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists the offer fields and every detail.
	Update(ctx context.Context, aggregate *offer.Offer) error

	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetForUpdate loads the offer and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetByDetailID loads the offer owning the given detail.
	GetByDetailID(ctx context.Context, detailID kernel.UUID) (*offer.Offer, error)

	// Delete removes the offer; its details go with it.
	Delete(ctx context.Context, id kernel.UUID) error
}
