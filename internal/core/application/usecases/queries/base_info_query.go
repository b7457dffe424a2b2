package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrBaseInfoQueryIsNotConstructed = errors.New(
	"BaseInfoQuery must be created via NewBaseInfoQuery constructor",
)

// BaseInfoQuery reads the public platform statistics.
type BaseInfoQuery struct {
	guard guard.ConstructorGuard
}

func NewBaseInfoQuery() BaseInfoQuery {
	return BaseInfoQuery{guard: guard.NewConstructorGuard()}
}

func (q BaseInfoQuery) Validate() error {
	return q.guard.Validate(ErrBaseInfoQueryIsNotConstructed)
}

// BaseInfoResponse holds the statistics. AverageRating has one decimal and
// is zero when there are no reviews.
type BaseInfoResponse struct {
	ReviewCount          int64
	AverageRating        decimal.Decimal
	BusinessProfileCount int64
	OfferCount           int64
}

type BaseInfoQueryHandler struct {
	db *gorm.DB
}

func NewBaseInfoQueryHandler(db *gorm.DB) BaseInfoQueryHandler {
	return BaseInfoQueryHandler{db: db}
}

func (h BaseInfoQueryHandler) Handle(ctx context.Context, query BaseInfoQuery) (BaseInfoResponse, error) {
	if err := query.Validate(); err != nil {
		return BaseInfoResponse{}, err
	}

	var (
		info   BaseInfoResponse
		rating decimal.NullDecimal
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM reviews),
			(SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews),
			(SELECT COUNT(*) FROM profiles WHERE type = ?),
			(SELECT COUNT(*) FROM offers)
	`, string(identity.RoleBusiness)).Row()

	if err := row.Scan(
		&info.ReviewCount,
		&rating,
		&info.BusinessProfileCount,
		&info.OfferCount,
	); err != nil {
		return BaseInfoResponse{}, err
	}

	info.AverageRating = decimal.Zero
	if rating.Valid {
		info.AverageRating = rating.Decimal.Round(1)
	}
	return info, nil
}
