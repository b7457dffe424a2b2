package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository stores orders and their snapshots.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate loads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForOffer reports whether any order references a detail of the offer.
	ExistsForOffer(ctx context.Context, offerID kernel.UUID) (bool, error)
}
