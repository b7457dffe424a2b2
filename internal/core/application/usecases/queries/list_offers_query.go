package queries

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrListOffersQueryIsNotConstructed = errors.New(
	"ListOffersQuery must be created via NewListOffersQuery constructor",
)

// offerOrderings maps the accepted ordering keys to SQL.
var offerOrderings = map[string]string{
	"updated_at":  "o.updated_at ASC",
	"-updated_at": "o.updated_at DESC",
	"min_price":   "min_price ASC",
	"-min_price":  "min_price DESC",
}

const DefaultOfferOrdering = "-updated_at"

// OfferFilter narrows the offer list. Zero fields do not filter.
type OfferFilter struct {
	CreatorID       *kernel.UUID
	MinPrice        *kernel.Price
	MaxDeliveryTime *int
	Search          string
	Ordering        string
}

// ListOffersQuery lists public offers.
//
// Example:
//
//	maxDays := 5
//	query, err := NewListOffersQuery(OfferFilter{MaxDeliveryTime: &maxDays, Ordering: "min_price"})
//	if err != nil {
//	    return err
//	}
//	offers, err := NewListOffersQueryHandler(db).Handle(ctx, query)
type ListOffersQuery struct {
	filter OfferFilter

	guard guard.ConstructorGuard
}

// NewListOffersQuery checks the filter. An empty ordering means DefaultOfferOrdering.
func NewListOffersQuery(filter OfferFilter) (ListOffersQuery, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Ordering == "" {
		filter.Ordering = DefaultOfferOrdering
	}

	var errList []error
	if _, ok := offerOrderings[filter.Ordering]; !ok {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"ordering", fmt.Errorf("%q is not a valid ordering", filter.Ordering)))
	}
	if filter.MaxDeliveryTime != nil && *filter.MaxDeliveryTime < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(
			"max_delivery_time", *filter.MaxDeliveryTime, 0, nil))
	}
	if filter.CreatorID != nil {
		if err := filter.CreatorID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("creator_id", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ListOffersQuery{}, err
	}

	return ListOffersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOffersQuery) Validate() error {
	return q.guard.Validate(ErrListOffersQueryIsNotConstructed)
}

func (q ListOffersQuery) Filter() OfferFilter {
	return q.filter
}
