package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// ListOrders godoc
//
//	@Summary	List the caller's orders as customer or business user
//	@Tags		Orders
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		orderView
//	@Failure	401	{object}	detailBody
//	@Router		/api/orders/ [get]
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOrder, services.ActionList)
	if err != nil {
		return err
	}

	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery(actor))
	if err != nil {
		return err
	}

	views := make([]orderView, len(orders))
	for i, o := range orders {
		views[i] = newOrderView(o)
	}
	return c.JSON(http.StatusOK, views)
}

// CreateOrder godoc
//
//	@Summary	Order an offer detail
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		body	body		orderPayload	true	"Offer detail to order"
//	@Success	201		{object}	orderView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Router		/api/orders/ [post]
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOrder, services.ActionCreate)
	if err != nil {
		return err
	}

	var payload orderPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	detailID, err := bodyID("offer_detail_id", payload.OfferDetailID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), detailID)
	if err != nil {
		return err
	}
	if err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderOrder(c, actor, cmd.OrderID(), http.StatusCreated)
}

// GetOrder godoc
//
//	@Summary	Retrieve an order the caller is a party of
//	@Tags		Orders
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	orderView
//	@Failure	403	{object}	detailBody
//	@Failure	404	{object}	detailBody
//	@Router		/api/orders/{id}/ [get]
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOrder, services.ActionRetrieve)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	return s.renderOrder(c, actor, orderID, http.StatusOK)
}

// PatchOrder godoc
//
//	@Summary	Complete or cancel an order
//	@Tags		Orders
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Order id"
//	@Param		body	body		orderStatusPayload	true	"New status"
//	@Success	200		{object}	orderView
//	@Failure	400		{object}	map[string][]string
//	@Failure	403		{object}	detailBody
//	@Failure	404		{object}	detailBody
//	@Router		/api/orders/{id}/ [patch]
func (s *Server) PatchOrder(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOrder, services.ActionUpdate)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	var payload orderStatusPayload
	if err := bindBody(c, &payload); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, payload.Status)
	if err != nil {
		return err
	}
	if err := s.handlers.UpdateOrderStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.renderOrder(c, actor, orderID, http.StatusOK)
}

// DeleteOrder godoc
//
//	@Summary	Delete an order (staff only)
//	@Tags		Orders
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Order id"
//	@Success	204
//	@Failure	403	{object}	detailBody
//	@Failure	404	{object}	detailBody
//	@Router		/api/orders/{id}/ [delete]
func (s *Server) DeleteOrder(c echo.Context) error {
	actor, err := s.authorize(c, services.ResourceOrder, services.ActionDelete)
	if err != nil {
		return err
	}

	orderID, err := pathID(c, "id", "order")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(actor, orderID)
	if err != nil {
		return err
	}
	if err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// GetOrderCount godoc
//
//	@Summary	Count a business user's orders in progress
//	@Tags		Orders
//	@Produce	json
//	@Param		business_user_id	path		string	true	"Business user id"
//	@Success	200					{object}	map[string]int64
//	@Failure	404					{object}	detailBody
//	@Router		/api/order-count/{business_user_id}/ [get]
func (s *Server) GetOrderCount(c echo.Context) error {
	return s.countOrders(c, order.InProgress, "order-count")
}

// GetCompletedOrderCount godoc
//
//	@Summary	Count a business user's completed orders
//	@Tags		Orders
//	@Produce	json
//	@Param		business_user_id	path		string	true	"Business user id"
//	@Success	200					{object}	map[string]int64
//	@Failure	404					{object}	detailBody
//	@Router		/api/completed-order-count/{business_user_id}/ [get]
func (s *Server) GetCompletedOrderCount(c echo.Context) error {
	return s.countOrders(c, order.Completed, "completed_order_count")
}

func (s *Server) countOrders(c echo.Context, status order.Status, key string) error {
	if _, err := s.authorize(c, services.ResourceOrderCount, services.ActionRetrieve); err != nil {
		return err
	}

	businessUserID, err := pathID(c, "business_user_id", "business_user")
	if err != nil {
		return err
	}

	query, err := queries.NewCountOrdersQuery(businessUserID, status)
	if err != nil {
		return err
	}

	count, err := s.handlers.CountOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]int64{key: count})
}

func (s *Server) renderOrder(c echo.Context, actor identity.Actor, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(status, newOrderView(o))
}
