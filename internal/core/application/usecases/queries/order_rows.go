package queries

import (
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func orderBase(db *gorm.DB) *gorm.DB {
	return db.Table("orders").Select(`
		id,
		customer_user_id,
		business_user_id,
		offer_detail_id,
		title,
		revisions,
		delivery_time_in_days,
		price,
		features,
		offer_type,
		status,
		created_at,
		updated_at`)
}

func scanOrders(rows *sql.Rows) ([]OrderResponse, error) {
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var (
			o                                    OrderResponse
			id, customerID, businessID, detailID uuid.UUID
			price                                decimal.Decimal
			features                             pq.StringArray
			tier, status                         string
		)

		if err := rows.Scan(
			&id,
			&customerID,
			&businessID,
			&detailID,
			&o.Title,
			&o.Revisions,
			&o.DeliveryTimeInDays,
			&price,
			&features,
			&tier,
			&status,
			&o.CreatedAt,
			&o.UpdatedAt,
		); err != nil {
			return nil, err
		}

		ids, err := toKernel(&id, &customerID, &businessID, &detailID)
		if err != nil {
			return nil, err
		}
		o.ID, o.CustomerUserID, o.BusinessUserID, o.OfferDetailID = ids[0], ids[1], ids[2], ids[3]

		if o.Price, err = kernel.NewPrice(price); err != nil {
			return nil, err
		}
		if o.OfferType, err = offer.ParseTier(tier); err != nil {
			return nil, err
		}
		if o.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		o.Features = []string(features)

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
