// Package http exposes the marketplace over a JSON API served by echo.
//
// Handlers translate requests into commands and queries, run them and render
// the read models. Every route under /api passes through the identity
// middleware, which turns a bearer token into an identity.Actor.
package http

import (
	"context"
	"log/slog"
	"net/http"

	_ "marketplace/internal/adapters/in/http/docs" // registers the API document
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Handlers holds the use cases the server dispatches to.
type Handlers struct {
	// Commands
	RegisterUser      CommandHandler[commands.RegisterUserCommand]
	UpdateProfile     CommandHandler[commands.UpdateProfileCommand]
	CreateOffer       CommandHandler[commands.CreateOfferCommand]
	UpdateOffer       CommandHandler[commands.UpdateOfferCommand]
	DeleteOffer       CommandHandler[commands.DeleteOfferCommand]
	CreateOrder       CommandHandler[commands.CreateOrderCommand]
	UpdateOrderStatus CommandHandler[commands.UpdateOrderStatusCommand]
	DeleteOrder       CommandHandler[commands.DeleteOrderCommand]
	CreateReview      CommandHandler[commands.CreateReviewCommand]
	UpdateReview      CommandHandler[commands.UpdateReviewCommand]
	DeleteReview      CommandHandler[commands.DeleteReviewCommand]

	// Queries
	Authenticate   QueryHandler[queries.AuthenticateQuery, queries.AuthenticatedUserResponse]
	ResolveActor   QueryHandler[queries.ResolveActorQuery, identity.Actor]
	GetProfile     QueryHandler[queries.GetProfileQuery, queries.ProfileResponse]
	ListProfiles   QueryHandler[queries.ListProfilesQuery, []queries.ProfileResponse]
	ListOffers     QueryHandler[queries.ListOffersQuery, []queries.OfferResponse]
	GetOffer       QueryHandler[queries.GetOfferQuery, queries.OfferResponse]
	GetOfferDetail QueryHandler[queries.GetOfferDetailQuery, queries.OfferDetailResponse]
	ListOrders     QueryHandler[queries.ListOrdersQuery, []queries.OrderResponse]
	GetOrder       QueryHandler[queries.GetOrderQuery, queries.OrderResponse]
	CountOrders    QueryHandler[queries.CountOrdersQuery, int64]
	ListReviews    QueryHandler[queries.ListReviewsQuery, []queries.ReviewResponse]
	GetReview      QueryHandler[queries.GetReviewQuery, queries.ReviewResponse]
	BaseInfo       QueryHandler[queries.BaseInfoQuery, queries.BaseInfoResponse]
}

// Server implements the HTTP handlers of the marketplace API.
type Server struct {
	handlers Handlers
	tokens   *Tokens
	authz    services.Authorizer
	logger   *slog.Logger
}

func NewServer(handlers Handlers, tokens *Tokens, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		tokens:   tokens,
		authz:    services.NewAuthorizer(),
		logger:   logger.With(slog.String("component", "http")),
	}
}

// RegisterRoutes mounts the API, the health check and the API docs on e and
// installs the error handler.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.HTTPErrorHandler = NewErrorHandler(s.logger)

	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", Identity(s.tokens, s.handlers.ResolveActor))

	api.POST("/registration/", s.Registration)
	api.POST("/login/", s.Login)

	api.GET("/profile/:id/", s.GetProfile)
	api.PATCH("/profile/:id/", s.PatchProfile)
	api.GET("/profiles/business/", s.ListBusinessProfiles)
	api.GET("/profiles/customer/", s.ListCustomerProfiles)

	api.GET("/offers/", s.ListOffers)
	api.POST("/offers/", s.CreateOffer)
	api.GET("/offers/:id/", s.GetOffer)
	api.PATCH("/offers/:id/", s.PatchOffer)
	api.DELETE("/offers/:id/", s.DeleteOffer)
	api.GET("/offerdetails/:id/", s.GetOfferDetail)

	api.GET("/orders/", s.ListOrders)
	api.POST("/orders/", s.CreateOrder)
	api.GET("/orders/:id/", s.GetOrder)
	api.PATCH("/orders/:id/", s.PatchOrder)
	api.DELETE("/orders/:id/", s.DeleteOrder)
	api.GET("/order-count/:business_user_id/", s.GetOrderCount)
	api.GET("/completed-order-count/:business_user_id/", s.GetCompletedOrderCount)

	api.GET("/reviews/", s.ListReviews)
	api.POST("/reviews/", s.CreateReview)
	api.GET("/reviews/:id/", s.GetReview)
	api.PATCH("/reviews/:id/", s.PatchReview)
	api.DELETE("/reviews/:id/", s.DeleteReview)

	api.GET("/base-info/", s.GetBaseInfo)
}

// Health godoc
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// authorize runs the action-level check before anything is parsed or loaded.
func (s *Server) authorize(c echo.Context, resource services.Resource, action services.Action) (identity.Actor, error) {
	actor := actorFrom(c)
	return actor, s.authz.Authorize(actor, resource, action)
}
