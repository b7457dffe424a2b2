package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) reviewUoWFactory() commands.ReviewUoWFactory {
	return FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:      commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.configs.BcryptCost),
		UpdateProfile:     commands.NewUpdateProfileCommandHandler(c.userUoWFactory()),
		CreateOffer:       commands.NewCreateOfferCommandHandler(c.orderUoWFactory()),
		UpdateOffer:       commands.NewUpdateOfferCommandHandler(c.orderUoWFactory()),
		DeleteOffer:       commands.NewDeleteOfferCommandHandler(c.orderUoWFactory()),
		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderUoWFactory()),
		UpdateOrderStatus: commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory()),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()),
		CreateReview:      commands.NewCreateReviewCommandHandler(c.reviewUoWFactory()),
		UpdateReview:      commands.NewUpdateReviewCommandHandler(c.reviewUoWFactory()),
		DeleteReview:      commands.NewDeleteReviewCommandHandler(c.reviewUoWFactory()),

		Authenticate:   queries.NewAuthenticateQueryHandler(c.gormDB),
		ResolveActor:   queries.NewResolveActorQueryHandler(c.gormDB),
		GetProfile:     queries.NewGetProfileQueryHandler(c.gormDB),
		ListProfiles:   queries.NewListProfilesQueryHandler(c.gormDB),
		ListOffers:     queries.NewListOffersQueryHandler(c.gormDB),
		GetOffer:       queries.NewGetOfferQueryHandler(c.gormDB),
		GetOfferDetail: queries.NewGetOfferDetailQueryHandler(c.gormDB),
		ListOrders:     queries.NewListOrdersQueryHandler(c.gormDB),
		GetOrder:       queries.NewGetOrderQueryHandler(c.gormDB),
		CountOrders:    queries.NewCountOrdersQueryHandler(c.gormDB),
		ListReviews:    queries.NewListReviewsQueryHandler(c.gormDB),
		GetReview:      queries.NewGetReviewQueryHandler(c.gormDB),
		BaseInfo:       queries.NewBaseInfoQueryHandler(c.gormDB),
	}
}

// CreateGrantStaffHandler backs the -grant-staff operator flag.
func (c *CompositionRoot) CreateGrantStaffHandler() commands.GrantStaffCommandHandler {
	return commands.NewGrantStaffCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	tokens, err := httpin.NewTokens(c.configs.JWTSecret, c.configs.JWTTTL)
	if err != nil {
		return nil, err
	}
	return httpin.NewServer(c.CreateHandlers(), tokens, c.logger), nil
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
