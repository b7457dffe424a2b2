package queries

import (
	"context"
	"database/sql"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// offerColumns is shared by the offer list and retrieve queries. The
// minimums are aggregated over the offer's details.
const offerColumns = `
	o.id,
	o.owner_id,
	o.title,
	o.description,
	o.image,
	o.created_at,
	o.updated_at,
	MIN(d.price) AS min_price,
	MIN(d.delivery_time_in_days) AS min_delivery_time,
	u.first_name,
	u.last_name,
	u.username`

func offerBase(db *gorm.DB) *gorm.DB {
	return db.Table("offers AS o").
		Select(offerColumns).
		Joins("JOIN offer_details AS d ON d.offer_id = o.id").
		Joins("JOIN users AS u ON u.id = o.owner_id").
		Group("o.id, u.id")
}

func scanOffers(rows *sql.Rows) ([]OfferResponse, error) {
	defer rows.Close()

	offers := make([]OfferResponse, 0)
	for rows.Next() {
		var (
			o           OfferResponse
			id, ownerID uuid.UUID
			image       sql.NullString
			minPrice    decimal.Decimal
		)

		if err := rows.Scan(
			&id,
			&ownerID,
			&o.Title,
			&o.Description,
			&image,
			&o.CreatedAt,
			&o.UpdatedAt,
			&minPrice,
			&o.MinDeliveryTime,
			&o.UserDetails.FirstName,
			&o.UserDetails.LastName,
			&o.UserDetails.Username,
		); err != nil {
			return nil, err
		}

		ids, err := toKernel(&id, &ownerID)
		if err != nil {
			return nil, err
		}
		o.ID, o.OwnerID = ids[0], ids[1]

		if image.Valid {
			o.Image = &image.String
		}

		price, err := kernel.NewPrice(minPrice)
		if err != nil {
			return nil, err
		}
		o.MinPrice = price

		offers = append(offers, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}

// attachDetails loads the details of every offer in one query.
func attachDetails(ctx context.Context, db *gorm.DB, offers []OfferResponse) error {
	if len(offers) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(offers))
	for i, o := range offers {
		ids[i] = o.ID.Bytes()
	}

	rows, err := detailBase(db.WithContext(ctx)).Where("offer_id IN ?", ids).Rows()
	if err != nil {
		return err
	}

	details, err := scanDetails(rows)
	if err != nil {
		return err
	}

	byOffer := make(map[kernel.UUID][]OfferDetailResponse, len(offers))
	for _, d := range details {
		byOffer[d.OfferID] = append(byOffer[d.OfferID], d)
	}
	for i := range offers {
		offers[i].Details = byOffer[offers[i].ID]
	}
	return nil
}

// detailBase selects details in basic, standard, premium order.
func detailBase(db *gorm.DB) *gorm.DB {
	return db.Table("offer_details").
		Select("id, offer_id, offer_type, title, revisions, delivery_time_in_days, price, features").
		Order(tierOrder)
}

const tierOrder = `CASE offer_type
	WHEN 'basic' THEN 1
	WHEN 'standard' THEN 2
	WHEN 'premium' THEN 3
	ELSE 4 END`

func scanDetails(rows *sql.Rows) ([]OfferDetailResponse, error) {
	defer rows.Close()

	details := make([]OfferDetailResponse, 0)
	for rows.Next() {
		var (
			d           OfferDetailResponse
			id, offerID uuid.UUID
			tier        string
			price       decimal.Decimal
			features    pq.StringArray
		)

		if err := rows.Scan(
			&id,
			&offerID,
			&tier,
			&d.Title,
			&d.Revisions,
			&d.DeliveryTimeInDays,
			&price,
			&features,
		); err != nil {
			return nil, err
		}

		ids, err := toKernel(&id, &offerID)
		if err != nil {
			return nil, err
		}
		d.ID, d.OfferID = ids[0], ids[1]

		d.OfferType, err = offer.ParseTier(tier)
		if err != nil {
			return nil, err
		}
		d.Price, err = kernel.NewPrice(price)
		if err != nil {
			return nil, err
		}
		d.Features = []string(features)

		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return details, nil
}
