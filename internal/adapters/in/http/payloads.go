package http

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var errMalformedBody = errors.New("malformed request body")

type registrationPayload struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	RepeatedPassword string `json:"repeated_password"`
	Type             string `json:"type"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profilePatchPayload struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	File         *string `json:"file"`
	Location     *string `json:"location"`
	Tel          *string `json:"tel"`
	Description  *string `json:"description"`
	WorkingHours *string `json:"working_hours"`
}

func (p profilePatchPayload) patch() identity.ProfilePatch {
	return identity.ProfilePatch{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		File:         p.File,
		Location:     p.Location,
		Tel:          p.Tel,
		Description:  p.Description,
		WorkingHours: p.WorkingHours,
	}
}

// detailPayload is one tier of an offer. Price accepts a JSON number or a
// decimal string.
type detailPayload struct {
	Title              string           `json:"title"`
	Revisions          int              `json:"revisions"`
	DeliveryTimeInDays int              `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           []string         `json:"features"`
	OfferType          string           `json:"offer_type"`
}

func (p detailPayload) spec() (offer.DetailSpec, error) {
	tier, tierErr := offer.ParseTier(p.OfferType)

	var (
		price    kernel.Price
		priceErr error
	)
	if p.Price == nil {
		priceErr = errs.NewValueIsRequiredError("price")
	} else {
		price, priceErr = kernel.NewPrice(*p.Price)
	}

	if err := errors.Join(tierErr, priceErr); err != nil {
		return offer.DetailSpec{}, err
	}

	return offer.DetailSpec{
		Tier:         tier,
		Title:        p.Title,
		Revisions:    p.Revisions,
		DeliveryDays: p.DeliveryTimeInDays,
		Price:        price,
		Features:     p.Features,
	}, nil
}

type offerPayload struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       *string         `json:"image"`
	Details     []detailPayload `json:"details"`
}

func (p offerPayload) specs() ([]offer.DetailSpec, error) {
	specs := make([]offer.DetailSpec, 0, len(p.Details))
	var errList []error
	for _, d := range p.Details {
		spec, err := d.spec()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		specs = append(specs, spec)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return specs, nil
}

type detailPatchPayload struct {
	Title              *string          `json:"title"`
	Revisions          *int             `json:"revisions"`
	DeliveryTimeInDays *int             `json:"delivery_time_in_days"`
	Price              *decimal.Decimal `json:"price"`
	Features           *[]string        `json:"features"`
	OfferType          string           `json:"offer_type"`
}

func (p detailPatchPayload) patch() (offer.DetailPatch, error) {
	tier, err := offer.ParseTier(p.OfferType)
	if err != nil {
		return offer.DetailPatch{}, err
	}

	patch := offer.DetailPatch{
		Tier:         tier,
		Title:        p.Title,
		Revisions:    p.Revisions,
		DeliveryDays: p.DeliveryTimeInDays,
		Features:     p.Features,
	}
	if p.Price != nil {
		price, err := kernel.NewPrice(*p.Price)
		if err != nil {
			return offer.DetailPatch{}, err
		}
		patch.Price = &price
	}
	return patch, nil
}

type offerPatchPayload struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Image       *string              `json:"image"`
	Details     []detailPatchPayload `json:"details"`
}

func (p offerPatchPayload) patch() (offer.Patch, error) {
	patch := offer.Patch{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
	}

	var errList []error
	for _, d := range p.Details {
		dp, err := d.patch()
		if err != nil {
			errList = append(errList, err)
			continue
		}
		patch.Details = append(patch.Details, dp)
	}
	if err := errors.Join(errList...); err != nil {
		return offer.Patch{}, err
	}
	return patch, nil
}

type orderPayload struct {
	OfferDetailID string `json:"offer_detail_id"`
}

type orderStatusPayload struct {
	Status string `json:"status"`
}

type reviewPayload struct {
	BusinessUser string `json:"business_user"`
	Rating       int    `json:"rating"`
	Description  string `json:"description"`
}

type reviewPatchPayload struct {
	Rating      *int    `json:"rating"`
	Description *string `json:"description"`
}

// bodyID parses a UUID sent in a request body field.
func bodyID(field, value string) (kernel.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(field)
	}
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}

// bindBody decodes the JSON body into payload. Malformed JSON is a 400.
func bindBody(c echo.Context, payload any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, payload); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(nonFieldErrors, errMalformedBody)
	}
	return nil
}
