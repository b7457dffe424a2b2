package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders the actor takes part in, as customer or
// as business user.
type ListOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor) ListOrdersQuery {
	return ListOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() identity.Actor {
	return q.actor
}

type ListOrdersQueryHandler struct {
	db    *gorm.DB
	authz services.Authorizer
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, authz: services.NewAuthorizer()}
}

// Handle returns the actor's orders, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOrder, services.ActionList); err != nil {
		return nil, err
	}

	userID := actor.UserID().Bytes()
	rows, err := orderBase(h.db.WithContext(ctx)).
		Where("customer_user_id = ? OR business_user_id = ?", userID, userID).
		Order("created_at DESC").
		Order("id").
		Rows()
	if err != nil {
		return nil, err
	}

	return scanOrders(rows)
}
