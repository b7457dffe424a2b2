package queries

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

type GetOrderQuery struct {
	actor   identity.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(actor identity.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() identity.Actor {
	return q.actor
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryHandler returns one order to either of its parties.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	authz services.Authorizer
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, authz: services.NewAuthorizer()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	actor := query.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOrder, services.ActionRetrieve); err != nil {
		return OrderResponse{}, err
	}

	rows, err := orderBase(h.db.WithContext(ctx)).Where("id = ?", query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}

	orders, err := scanOrders(rows)
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	o, err := orders[0].aggregate()
	if err != nil {
		return OrderResponse{}, err
	}
	if err := h.authz.AuthorizeObject(actor, services.ResourceOrder, services.ActionRetrieve, o); err != nil {
		return OrderResponse{}, err
	}

	return orders[0], nil
}
