package order

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOwnOffer              = errs.NewValueIsInvalidErrorWithCause(
		"offer_detail_id", errors.New("you cannot order your own offer"))
)

// Order is a customer's purchase of one offer detail.
//
// Invariants:
//   - customer and business user differ
//   - snapshot and parties never change; only status moves, along the state machine
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	businessID kernel.UUID
	detailID   kernel.UUID
	snapshot   Snapshot
	status     Status
	createdAt  time.Time
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewOrder places an order by customerID for detail, which belongs to an offer
// owned by businessID. The order starts in_progress with a snapshot of detail.
func NewOrder(id, customerID, businessID kernel.UUID, detail *offer.Detail) (*Order, error) {
	if detail == nil {
		return nil, errs.NewValueIsRequiredError("offer_detail_id")
	}

	now := time.Now().UTC()
	o := &Order{
		detailID:  detail.ID(),
		snapshot:  SnapshotOf(detail),
		status:    InProgress,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		setParty(&o.customerID, "customer_user", customerID),
		setParty(&o.businessID, "business_user", businessID),
	); err != nil {
		return nil, err
	}

	if o.customerID.IsEqual(o.businessID) {
		return nil, ErrOwnOffer
	}

	return o, nil
}

// OrderState is the persisted form of an order used by RestoreOrder.
type OrderState struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	BusinessID kernel.UUID
	DetailID   kernel.UUID
	Snapshot   Snapshot
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(state OrderState) (*Order, error) {
	o := &Order{
		detailID:  state.DetailID,
		snapshot:  state.Snapshot.clone(),
		createdAt: state.CreatedAt,
		updatedAt: state.UpdatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(state.ID),
		setParty(&o.customerID, "customer_user", state.CustomerID),
		setParty(&o.businessID, "business_user", state.BusinessID),
		o.setStatus(state.Status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) BusinessID() kernel.UUID {
	return o.businessID
}

// DetailID is the offer detail the order was placed against.
func (o *Order) DetailID() kernel.UUID {
	return o.detailID
}

func (o *Order) Snapshot() Snapshot {
	return o.snapshot.clone()
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsParty reports whether userID is the customer or the business user.
func (o *Order) IsParty(userID kernel.UUID) bool {
	return o.customerID.IsEqual(userID) || o.businessID.IsEqual(userID)
}

// ChangeStatus moves the order to next. The order is unchanged on error.
func (o *Order) ChangeStatus(next Status) error {
	status, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = status
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func setParty(dst *kernel.UUID, field string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	*dst = id
	return nil
}
