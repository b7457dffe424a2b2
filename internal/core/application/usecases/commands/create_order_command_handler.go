package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// ErrUnknownOfferDetail is returned when the ordered offer detail does not exist.
var ErrUnknownOfferDetail = errs.NewValueIsInvalidErrorWithCause(
	"offer_detail_id", errors.New("offer detail does not exist"))

// CreateOrderCommandHandler places customer orders against offer details.
// The order keeps a snapshot of the detail as it was at this moment.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	authz      services.Authorizer
}

// NewCreateOrderCommandHandler creates a new handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		authz:      services.NewAuthorizer(),
	}
}

// Handle loads the offer owning the detail and places the order with the
// offer owner as business user. Ordering one's own offer is a validation error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	actor := command.Actor()
	if err := h.authz.Authorize(actor, services.ResourceOrder, services.ActionCreate); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OfferRepository().GetByDetailID(ctx, command.DetailID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUnknownOfferDetail
	}
	if err != nil {
		return err
	}

	detail, ok := o.DetailByID(command.DetailID())
	if !ok {
		return ErrUnknownOfferDetail
	}

	newOrder, err := order.NewOrder(command.OrderID(), actor.UserID(), o.OwnerID(), detail)
	if err != nil {
		return err
	}

	// the detail may have been deleted since it was read
	err = uow.OrderRepository().Add(ctx, newOrder)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrUnknownOfferDetail
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
