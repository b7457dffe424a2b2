package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrCountOrdersQueryIsNotConstructed = errors.New(
	"CountOrdersQuery must be created via NewCountOrdersQuery constructor",
)

// CountOrdersQuery counts a business user's orders in one status.
// The counts are public.
//
// Example:
//
//	query, _ := NewCountOrdersQuery(businessUserID, order.Completed)
//	count, err := NewCountOrdersQueryHandler(db).Handle(ctx, query)
type CountOrdersQuery struct {
	businessUserID kernel.UUID
	status         order.Status

	guard guard.ConstructorGuard
}

func NewCountOrdersQuery(businessUserID kernel.UUID, status order.Status) (CountOrdersQuery, error) {
	if err := errors.Join(businessUserID.Validate(), status.Validate()); err != nil {
		return CountOrdersQuery{}, err
	}
	return CountOrdersQuery{
		businessUserID: businessUserID,
		status:         status,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (q CountOrdersQuery) Validate() error {
	return q.guard.Validate(ErrCountOrdersQueryIsNotConstructed)
}

func (q CountOrdersQuery) BusinessUserID() kernel.UUID {
	return q.businessUserID
}

func (q CountOrdersQuery) Status() order.Status {
	return q.status
}

type CountOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountOrdersQueryHandler(db *gorm.DB) CountOrdersQueryHandler {
	return CountOrdersQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound when the user does not exist or
// does not hold a business profile.
func (h CountOrdersQueryHandler) Handle(ctx context.Context, query CountOrdersQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	db := h.db.WithContext(ctx)
	userID := query.BusinessUserID().Bytes()

	var businesses int64
	if err := db.Table("profiles").
		Where("user_id = ? AND type = ?", userID, string(identity.RoleBusiness)).
		Count(&businesses).Error; err != nil {
		return 0, err
	}
	if businesses == 0 {
		return 0, errs.NewObjectNotFoundError("business_user", query.BusinessUserID().String())
	}

	var count int64
	if err := db.Table("orders").
		Where("business_user_id = ? AND status = ?", userID, query.Status().String()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
