package queries

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// ListOffersQueryHandler reads offers with their details and minimums.
type ListOffersQueryHandler struct {
	db *gorm.DB
}

func NewListOffersQueryHandler(db *gorm.DB) ListOffersQueryHandler {
	return ListOffersQueryHandler{db: db}
}

// Handle runs the filtered list. min_price keeps offers having at least one
// detail priced at or above the value; max_delivery_time keeps offers having
// at least one detail delivered within the value.
func (h ListOffersQueryHandler) Handle(ctx context.Context, query ListOffersQuery) ([]OfferResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	f := query.Filter()
	db := h.db.WithContext(ctx)
	stmt := offerBase(db)

	if f.CreatorID != nil {
		stmt = stmt.Where("o.owner_id = ?", f.CreatorID.Bytes())
	}
	if f.MinPrice != nil {
		stmt = stmt.Where(
			"EXISTS (SELECT 1 FROM offer_details AS p WHERE p.offer_id = o.id AND p.price >= ?)",
			f.MinPrice.Decimal(),
		)
	}
	if f.MaxDeliveryTime != nil {
		stmt = stmt.Where(
			"EXISTS (SELECT 1 FROM offer_details AS t WHERE t.offer_id = o.id AND t.delivery_time_in_days <= ?)",
			*f.MaxDeliveryTime,
		)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		stmt = stmt.Where("(o.title ILIKE ? OR o.description ILIKE ?)", pattern, pattern)
	}

	rows, err := stmt.Order(offerOrderings[f.Ordering]).Order("o.id").Rows()
	if err != nil {
		return nil, err
	}

	offers, err := scanOffers(rows)
	if err != nil {
		return nil, err
	}

	if err := attachDetails(ctx, h.db, offers); err != nil {
		return nil, err
	}
	return offers, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
