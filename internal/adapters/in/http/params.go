package http

import (
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// pathID binds the UUID path parameter name. A malformed id cannot name an
// existing resource, so it is reported as not found.
func pathID(c echo.Context, name, resource string) (kernel.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(resource, c.Param(name), err)
	}

	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewObjectNotFoundErrorWithCause(resource, c.Param(name), err)
	}
	return kid, nil
}

type listOffersParams struct {
	CreatorID       *openapi_types.UUID
	MinPrice        *string
	MaxDeliveryTime *int
	Search          *string
	Ordering        *string
}

func bindListOffersParams(c echo.Context) (queries.OfferFilter, error) {
	var (
		p      listOffersParams
		filter queries.OfferFilter
	)

	if err := bindQuery(c, "creator_id", &p.CreatorID); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "min_price", &p.MinPrice); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "max_delivery_time", &p.MaxDeliveryTime); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "search", &p.Search); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "ordering", &p.Ordering); err != nil {
		return filter, err
	}

	var err error
	if filter.CreatorID, err = optionalID("creator_id", p.CreatorID); err != nil {
		return filter, err
	}
	if p.MinPrice != nil {
		price, err := kernel.PriceFromString(*p.MinPrice)
		if err != nil {
			return filter, errs.NewValueIsInvalidErrorWithCause("min_price", err)
		}
		filter.MinPrice = &price
	}
	filter.MaxDeliveryTime = p.MaxDeliveryTime
	filter.Search = deref(p.Search)
	filter.Ordering = deref(p.Ordering)

	return filter, nil
}

type listReviewsParams struct {
	BusinessUserID *openapi_types.UUID
	ReviewerID     *openapi_types.UUID
	Ordering       *string
}

func bindListReviewsParams(c echo.Context) (queries.ReviewFilter, error) {
	var (
		p      listReviewsParams
		filter queries.ReviewFilter
	)

	if err := bindQuery(c, "business_user_id", &p.BusinessUserID); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "reviewer_id", &p.ReviewerID); err != nil {
		return filter, err
	}
	if err := bindQuery(c, "ordering", &p.Ordering); err != nil {
		return filter, err
	}

	var err error
	if filter.BusinessUserID, err = optionalID("business_user_id", p.BusinessUserID); err != nil {
		return filter, err
	}
	if filter.ReviewerID, err = optionalID("reviewer_id", p.ReviewerID); err != nil {
		return filter, err
	}
	filter.Ordering = deref(p.Ordering)

	return filter, nil
}

// bindQuery binds an optional form-style query parameter.
func bindQuery(c echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), dest); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func optionalID(name string, id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	kid, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &kid, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
