// Package queries contains read operations for retrieving system state.
// Handlers query the database directly and return read models shaped for the
// HTTP views; they never go through the aggregates' repositories.
package queries

import (
	"time"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// UserDetailsResponse is the public name block of an offer owner.
type UserDetailsResponse struct {
	FirstName string
	LastName  string
	Username  string
}

type OfferDetailResponse struct {
	ID                 kernel.UUID
	OfferID            kernel.UUID
	OfferType          offer.Tier
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              kernel.Price
	Features           []string
}

// OfferResponse is an offer with its details and the derived minimums.
type OfferResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Title           string
	Description     string
	Image           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	MinPrice        kernel.Price
	MinDeliveryTime int
	Details         []OfferDetailResponse
	UserDetails     UserDetailsResponse
}

type OrderResponse struct {
	ID                 kernel.UUID
	CustomerUserID     kernel.UUID
	BusinessUserID     kernel.UUID
	OfferDetailID      kernel.UUID
	Title              string
	Revisions          int
	DeliveryTimeInDays int
	Price              kernel.Price
	Features           []string
	OfferType          offer.Tier
	Status             order.Status
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// aggregate rebuilds the order so the access rules can be run against it.
func (r OrderResponse) aggregate() (*order.Order, error) {
	return order.RestoreOrder(order.OrderState{
		ID:         r.ID,
		CustomerID: r.CustomerUserID,
		BusinessID: r.BusinessUserID,
		DetailID:   r.OfferDetailID,
		Snapshot: order.Snapshot{
			Title:        r.Title,
			Revisions:    r.Revisions,
			DeliveryDays: r.DeliveryTimeInDays,
			Price:        r.Price,
			Features:     r.Features,
			Tier:         r.OfferType,
		},
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

type ReviewResponse struct {
	ID             kernel.UUID
	BusinessUserID kernel.UUID
	ReviewerID     kernel.UUID
	Rating         int
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ProfileResponse struct {
	UserID       kernel.UUID
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Type         identity.Role
	File         string
	Location     string
	Tel          string
	Description  string
	WorkingHours string
	CreatedAt    time.Time
}

func toKernel(ids ...*uuid.UUID) ([]kernel.UUID, error) {
	out := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		k, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		out[i] = k
	}
	return out, nil
}
