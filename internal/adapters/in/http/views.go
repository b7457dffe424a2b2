package http

import (
	"fmt"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// viewKind selects the fields a view renders for an action.
type viewKind int

const (
	viewList viewKind = iota
	viewRetrieve
	viewWrite
)

type userDetailsView struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type detailLinkView struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type offerDetailView struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Revisions          int      `json:"revisions"`
	DeliveryTimeInDays int      `json:"delivery_time_in_days"`
	Price              string   `json:"price"`
	Features           []string `json:"features"`
	OfferType          string   `json:"offer_type"`
}

func newOfferDetailView(d queries.OfferDetailResponse) offerDetailView {
	features := d.Features
	if features == nil {
		features = []string{}
	}
	return offerDetailView{
		ID:                 d.ID.String(),
		Title:              d.Title,
		Revisions:          d.Revisions,
		DeliveryTimeInDays: d.DeliveryTimeInDays,
		Price:              d.Price.String(),
		Features:           features,
		OfferType:          d.OfferType.String(),
	}
}

// offerView renders an offer. Reads link to the details and carry the
// derived minimums; writes echo the full details.
type offerView struct {
	ID              string           `json:"id"`
	User            string           `json:"user"`
	Title           string           `json:"title"`
	Image           *string          `json:"image"`
	Description     string           `json:"description"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	Details         any              `json:"details"`
	MinPrice        *string          `json:"min_price,omitempty"`
	MinDeliveryTime *int             `json:"min_delivery_time,omitempty"`
	UserDetails     *userDetailsView `json:"user_details,omitempty"`
}

func newOfferView(c echo.Context, o queries.OfferResponse, kind viewKind) offerView {
	v := offerView{
		ID:          o.ID.String(),
		User:        o.OwnerID.String(),
		Title:       o.Title,
		Image:       o.Image,
		Description: o.Description,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}

	switch kind {
	case viewWrite:
		details := make([]offerDetailView, len(o.Details))
		for i, d := range o.Details {
			details[i] = newOfferDetailView(d)
		}
		v.Details = details
	case viewList, viewRetrieve:
		links := make([]detailLinkView, len(o.Details))
		for i, d := range o.Details {
			links[i] = detailLinkView{ID: d.ID.String(), URL: detailURL(c, d.ID.String())}
		}
		v.Details = links

		minPrice := o.MinPrice.String()
		minDelivery := o.MinDeliveryTime
		v.MinPrice = &minPrice
		v.MinDeliveryTime = &minDelivery
		v.UserDetails = &userDetailsView{
			FirstName: o.UserDetails.FirstName,
			LastName:  o.UserDetails.LastName,
			Username:  o.UserDetails.Username,
		}
	}

	return v
}

func detailURL(c echo.Context, id string) string {
	return fmt.Sprintf("%s://%s/api/offerdetails/%s/", c.Scheme(), c.Request().Host, id)
}

type orderView struct {
	ID                 string    `json:"id"`
	CustomerUser       string    `json:"customer_user"`
	BusinessUser       string    `json:"business_user"`
	Title              string    `json:"title"`
	Revisions          int       `json:"revisions"`
	DeliveryTimeInDays int       `json:"delivery_time_in_days"`
	Price              string    `json:"price"`
	Features           []string  `json:"features"`
	OfferType          string    `json:"offer_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func newOrderView(o queries.OrderResponse) orderView {
	features := o.Features
	if features == nil {
		features = []string{}
	}
	return orderView{
		ID:                 o.ID.String(),
		CustomerUser:       o.CustomerUserID.String(),
		BusinessUser:       o.BusinessUserID.String(),
		Title:              o.Title,
		Revisions:          o.Revisions,
		DeliveryTimeInDays: o.DeliveryTimeInDays,
		Price:              o.Price.String(),
		Features:           features,
		OfferType:          o.OfferType.String(),
		Status:             o.Status.String(),
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

type reviewView struct {
	ID           string    `json:"id"`
	BusinessUser string    `json:"business_user"`
	Reviewer     string    `json:"reviewer"`
	Rating       int       `json:"rating"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newReviewView(r queries.ReviewResponse) reviewView {
	return reviewView{
		ID:           r.ID.String(),
		BusinessUser: r.BusinessUserID.String(),
		Reviewer:     r.ReviewerID.String(),
		Rating:       r.Rating,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// profileKind selects the profile fields: the full record for its owner's
// page, or the public subset of the business and customer lists.
type profileKind int

const (
	profileFull profileKind = iota
	profileBusinessList
	profileCustomerList
)

type profileView struct {
	User         string     `json:"user"`
	Username     string     `json:"username"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	File         string     `json:"file"`
	Type         string     `json:"type"`
	Email        *string    `json:"email,omitempty"`
	Location     *string    `json:"location,omitempty"`
	Tel          *string    `json:"tel,omitempty"`
	Description  *string    `json:"description,omitempty"`
	WorkingHours *string    `json:"working_hours,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

func newProfileView(p queries.ProfileResponse, kind profileKind) profileView {
	v := profileView{
		User:      p.UserID.String(),
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		File:      p.File,
		Type:      string(p.Type),
	}

	switch kind {
	case profileFull:
		v.Email = &p.Email
		v.CreatedAt = &p.CreatedAt
		fallthrough
	case profileBusinessList:
		v.Location = &p.Location
		v.Tel = &p.Tel
		v.Description = &p.Description
		v.WorkingHours = &p.WorkingHours
	case profileCustomerList:
	}

	return v
}

type authView struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserID   string `json:"user_id"`
}

type baseInfoView struct {
	ReviewCount          int64   `json:"review_count"`
	AverageRating        float64 `json:"average_rating"`
	BusinessProfileCount int64   `json:"business_profile_count"`
	OfferCount           int64   `json:"offer_count"`
}
