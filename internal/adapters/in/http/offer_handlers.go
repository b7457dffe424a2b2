package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListOffers godoc
//
//	@Summary	List offers
//	@Tags		Offers
//	@Produce	json
//	@Param		creator_id			query		string	false	"Owner user id"
//	@Param		min_price			query		string	false	"Keep offers with a detail priced at least this"
//	@Param		max_delivery_time	query		int		false	"Keep offers with a detail delivered within this many days"
//	@Param		search				query		string	false	"Substring of title or description"
//	@Param		ordering			query		string	false	"updated_at, -updated_at, min_price or -min_price"
//	@Success	200					{array}		offerView
//	@Failure	400					{object}	map[string][]string
//	@Router		/api/offers/ [get]
func (s *Server) ListOffers(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceOffer, services.ActionList); err != nil {
		return err
	}

	filter, err := bindListOffersParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListOffersQuery(filter)
	if err != nil {
		return err
	}

	offers, err := s.handlers.ListOffers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	views := make([]offerView, len(offers))
	for i, o := range offers {
		views[i] = newOfferView(c, o, viewList)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateOffer godoc
//
//	@Summary	Publish an offer with its basic, standard and premium details
//	@Tags		Offers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		offerPayload	true	"Offer"
//	@Success	201		{object}	offerView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Router		/api/offers/ [post]
func (s *Server) CreateOffer(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOffer, services.ActionCreate)
	if err != nil {
		return err
	}

	var payload offerPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	specs, err := payload.specs()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOfferCommand(
		actor, kernel.NewUUID(), payload.Title, payload.Description, payload.Image, specs)
	if err != nil {
		return err
	}
	if err := s.handlers.CreateOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderOffer(c, cmd.OfferID(), http.StatusCreated, viewWrite)
}

// GetOffer godoc
//
//	@Summary	Retrieve an offer
//	@Tags		Offers
//	@Produce	json
//	@Param		id	path		string	true	"Offer id"
//	@Success	200	{object}	offerView
//	@Failure	404	{object}	detailBody
//	@Router		/api/offers/{id}/ [get]
func (s *Server) GetOffer(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceOffer, services.ActionRetrieve); err != nil {
		return err
	}

	offerID, err := pathID(c, "id", "offer")
	if err != nil {
		return err
	}

	return s.renderOffer(c, offerID, http.StatusOK, viewRetrieve)
}

// PatchOffer godoc
//
//	@Summary	Update an offer and its details by tier
//	@Tags		Offers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Offer id"
//	@Param		body	body		offerPatchPayload	true	"Fields to change"
//	@Success	200		{object}	offerView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Failure	404		{object}	detailBody
//	@Router		/api/offers/{id}/ [patch]
func (s *Server) PatchOffer(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOffer, services.ActionUpdate)
	if err != nil {
		return err
	}

	offerID, err := pathID(c, "id", "offer")
	if err != nil {
		return err
	}

	var payload offerPatchPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	patch, err := payload.patch()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOfferCommand(actor, offerID, patch)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderOffer(c, offerID, http.StatusOK, viewWrite)
}

// DeleteOffer godoc
//
//	@Summary	Delete an offer without orders
//	@Tags		Offers
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Offer id"
//	@Success	204
//	@Failure	400	{object}	map[string][]string
//	@Failure	403	{object}	detailBody
//	@Failure	404	{object}	detailBody
//	@Router		/api/offers/{id}/ [delete]
func (s *Server) DeleteOffer(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOffer, services.ActionDelete)
	if err != nil {
		return err
	}

	offerID, err := pathID(c, "id", "offer")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOfferCommand(actor, offerID)
	if err != nil {
		return err
	}
	if err := s.handlers.DeleteOffer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOfferDetail godoc
//
//	@Summary	Retrieve one offer detail
//	@Tags		Offers
//	@Produce	json
//	@Param		id	path		string	true	"Offer detail id"
//	@Success	200	{object}	offerDetailView
//	@Failure	404	{object}	detailBody
//	@Router		/api/offerdetails/{id}/ [get]
func (s *Server) GetOfferDetail(c echo.Context) error {
	if _, err := s.authorize(c, services.ResourceOfferDetail, services.ActionRetrieve); err != nil {
		return err
	}

	detailID, err := pathID(c, "id", "offer_detail")
	if err != nil {
		return err
	}

	query, err := queries.NewGetOfferDetailQuery(detailID)
	if err != nil {
		return err
	}

	detail, err := s.handlers.GetOfferDetail.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newOfferDetailView(detail))
}

func (s *Server) renderOffer(c echo.Context, offerID kernel.UUID, status int, kind viewKind) error {
	query, err := queries.NewGetOfferQuery(offerID)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOffer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, newOfferView(c, o, kind))
}
