// Package orderrepo persists orders with the snapshot of the ordered detail.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is an order row. The snapshot columns copy the offer detail at
// ordering time and are never updated.
type OrderDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	BusinessUserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	OfferDetailID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title              string          `gorm:"type:varchar(255);not null"`
	Revisions          int             `gorm:"not null"`
	DeliveryTimeInDays int             `gorm:"not null"`
	Price              decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Features           pq.StringArray  `gorm:"type:text[];not null"`
	OfferType          string          `gorm:"type:varchar(16);not null"`
	Status             string          `gorm:"type:varchar(16);not null;index"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	snap := aggregate.Snapshot()
	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerUserID:     aggregate.CustomerID().Bytes(),
		BusinessUserID:     aggregate.BusinessID().Bytes(),
		OfferDetailID:      aggregate.DetailID().Bytes(),
		Title:              snap.Title,
		Revisions:          snap.Revisions,
		DeliveryTimeInDays: snap.DeliveryDays,
		Price:              snap.Price.Decimal(),
		Features:           pq.StringArray(snap.Features),
		OfferType:          string(snap.Tier),
		Status:             aggregate.Status().String(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// ToDomain rebuilds an order from its row.
func ToDomain(dto OrderDTO) (*order.Order, error) {
	ids := make([]kernel.UUID, 4)
	for i, raw := range []uuid.UUID{dto.ID, dto.CustomerUserID, dto.BusinessUserID, dto.OfferDetailID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.OrderState{
		ID:         ids[0],
		CustomerID: ids[1],
		BusinessID: ids[2],
		DetailID:   ids[3],
		Snapshot: order.Snapshot{
			Title:        dto.Title,
			Revisions:    dto.Revisions,
			DeliveryDays: dto.DeliveryTimeInDays,
			Price:        price,
			Features:     []string(dto.Features),
			Tier:         offer.Tier(dto.OfferType),
		},
		Status:    status,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	})
}
