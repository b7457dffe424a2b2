package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListReviews godoc
//
//	@Summary	List reviews
//	@Tags		Reviews
//	@Produce	json
//	@Param		business_user_id	query		string	false	"Reviewed business user"
//	@Param		reviewer_id			query		string	false	"Reviewing customer"
//	@Param		ordering			query		string	false	"updated_at, -updated_at, rating or -rating"
//	@Success	200					{array}		reviewView
//	@Failure	400					{object}	map[string][]string
//	@Router		/api/reviews/ [get]
func (s *Server) ListReviews(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceReview, services.ActionList); err != nil {
		return err
	}

	filter, err := bindListReviewsParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListReviewsQuery(filter)
	if err != nil {
		return err
	}

	reviews, err := s.handlers.ListReviews.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]reviewView, len(reviews))
	for i, r := range reviews {
		views[i] = newReviewView(r)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateReview godoc
//
//	@Summary	Review a business user
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		reviewPayload	true	"Review"
//	@Success	201		{object}	reviewView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Router		/api/reviews/ [post]
func (s *Server) CreateReview(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceReview, services.ActionCreate)
	if err != nil {
		return err
	}

	var payload reviewPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	businessID, err := bodyID("business_user", payload.BusinessUser)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateReviewCommand(
		actor, kernel.NewUUID(), businessID, payload.Rating, payload.Description)
	if err != nil {
		return err
	}
	if err := s.handlers.CreateReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderReview(c, cmd.ReviewID(), http.StatusCreated)
}

// GetReview godoc
//
//	@Summary	Retrieve a review
//	@Tags		Reviews
//	@Produce	json
//	@Param		id	path		string	true	"Review id"
//	@Success	200	{object}	reviewView
//	@Failure	404	{object}	detailBody
//	@Router		/api/reviews/{id}/ [get]
func (s *Server) GetReview(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceReview, services.ActionRetrieve); err != nil {
		return err
	}

	reviewID, err := pathID(c, "id", "review")
	if err != nil {
		return err
	}

	return s.renderReview(c, reviewID, http.StatusOK)
}

// PatchReview godoc
//
//	@Summary	Change the rating or description of the caller's review
//	@Tags		Reviews
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Review id"
//	@Param		body	body		reviewPatchPayload	true	"Fields to change"
//	@Success	200		{object}	reviewView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Failure	404		{object}	detailBody
//	@Router		/api/reviews/{id}/ [patch]
func (s *Server) PatchReview(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceReview, services.ActionUpdate)
	if err != nil {
		return err
	}

	reviewID, err := pathID(c, "id", "review")
	if err != nil {
		return err
	}

	var payload reviewPatchPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateReviewCommand(actor, reviewID, payload.Rating, payload.Description)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderReview(c, reviewID, http.StatusOK)
}

// DeleteReview godoc
//
//	@Summary	Delete the caller's review
//	@Tags		Reviews
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Review id"
//	@Success	204
//	@Failure	403	{object}	detailBody
//	@Failure	404	{object}	detailBody
//	@Router		/api/reviews/{id}/ [delete]
func (s *Server) DeleteReview(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceReview, services.ActionDelete)
	if err != nil {
		return err
	}

	reviewID, err := pathID(c, "id", "review")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteReviewCommand(actor, reviewID)
	if err != nil {
		return err
	}
	if err := s.handlers.DeleteReview.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetBaseInfo godoc
//
//	@Summary	Platform statistics
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	baseInfoView
//	@Router		/api/base-info/ [get]
func (s *Server) GetBaseInfo(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceBaseInfo, services.ActionRetrieve); err != nil {
		return err
	}

	info, err := s.handlers.BaseInfo.Handle(c.Request().Context(), queries.NewBaseInfoQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, baseInfoView{
		ReviewCount:          info.ReviewCount,
		AverageRating:        info.AverageRating.InexactFloat64(),
		BusinessProfileCount: info.BusinessProfileCount,
		OfferCount:           info.OfferCount,
	})
}

func (s *Server) renderReview(c echo.Context, reviewID kernel.UUID, status int) error {
	query, err := queries.NewGetReviewQuery(reviewID)
	if err != nil {
		return err
	}

	r, err := s.handlers.GetReview.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, newReviewView(r))
}
