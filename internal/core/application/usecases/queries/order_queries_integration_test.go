package queries_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OrderQueriesTestSuite struct {
	suite.Suite
	database  *pgtest.Database
	shop      *identity.User
	anna      *identity.User
	bob       *identity.User
	offer     *offer.Offer
	annaOrder *order.Order
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	database, err := pgtest.Start(ctx, postgres.NewGormConfig())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(ctx, database.DB))
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())

	var err error
	suite.shop, err = suite.database.SeedUser(ctx, "shop", identity.RoleBusiness)
	suite.Require().NoError(err)
	suite.anna, err = suite.database.SeedUser(ctx, "anna", identity.RoleCustomer)
	suite.Require().NoError(err)
	suite.bob, err = suite.database.SeedUser(ctx, "bob", identity.RoleCustomer)
	suite.Require().NoError(err)
	suite.offer, err = suite.database.SeedOffer(ctx, suite.shop.ID(), "Logo design", "50", "150", "300")
	suite.Require().NoError(err)

	suite.annaOrder = suite.placeOrder(suite.anna, offer.TierBasic)
	completed := suite.placeOrder(suite.bob, offer.TierPremium)
	suite.Require().NoError(completed.ChangeStatus(order.Completed))
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB, pgtest.NopTracker{}).Update(ctx, completed))
}

func (suite *OrderQueriesTestSuite) TearDownTest() {}

func (suite *OrderQueriesTestSuite) placeOrder(customer *identity.User, tier offer.Tier) *order.Order {
	detail, ok := suite.offer.Detail(tier)
	suite.Require().True(ok)

	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), suite.shop.ID(), detail)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.database.DB, pgtest.NopTracker{}).
		Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesTestSuite) listFor(user *identity.User) []queries.OrderResponse {
	result, err := queries.NewListOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListOrdersQuery(identity.NewActor(user)))
	suite.Require().NoError(err)
	return result
}

func (suite *OrderQueriesTestSuite) TestList_ScopedToParties() {
	suite.Len(suite.listFor(suite.shop), 2)

	annas := suite.listFor(suite.anna)
	suite.Require().Len(annas, 1)
	suite.Equal(suite.annaOrder.ID(), annas[0].ID)
	suite.Equal(order.InProgress, annas[0].Status)
	suite.True(annas[0].Price.IsEqual(kernel.MustPrice("50")))
	suite.Equal(offer.TierBasic, annas[0].OfferType)
}

func (suite *OrderQueriesTestSuite) TestList_Anonymous() {
	_, err := queries.NewListOrdersQueryHandler(suite.database.DB).
		Handle(context.Background(), queries.NewListOrdersQuery(identity.Anonymous()))
	suite.Require().ErrorIs(err, errs.ErrAuthenticationRequired)
}

func (suite *OrderQueriesTestSuite) TestGet_Parties() {
	for _, user := range []*identity.User{suite.anna, suite.shop} {
		query, err := queries.NewGetOrderQuery(identity.NewActor(user), suite.annaOrder.ID())
		suite.Require().NoError(err)

		got, err := queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)
		suite.Require().NoError(err)
		suite.Equal(suite.anna.ID(), got.CustomerUserID)
		suite.Equal(suite.shop.ID(), got.BusinessUserID)
	}
}

func (suite *OrderQueriesTestSuite) TestGet_OutsiderIsForbidden() {
	query, err := queries.NewGetOrderQuery(identity.NewActor(suite.bob), suite.annaOrder.ID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *OrderQueriesTestSuite) TestGet_NotFound() {
	query, err := queries.NewGetOrderQuery(identity.NewActor(suite.anna), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.database.DB).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) count(userID kernel.UUID, status order.Status) (int64, error) {
	query, err := queries.NewCountOrdersQuery(userID, status)
	suite.Require().NoError(err)
	return queries.NewCountOrdersQueryHandler(suite.database.DB).Handle(context.Background(), query)
}

func (suite *OrderQueriesTestSuite) TestCount() {
	inProgress, err := suite.count(suite.shop.ID(), order.InProgress)
	suite.Require().NoError(err)
	suite.Equal(int64(1), inProgress)

	completed, err := suite.count(suite.shop.ID(), order.Completed)
	suite.Require().NoError(err)
	suite.Equal(int64(1), completed)
}

func (suite *OrderQueriesTestSuite) TestCount_NotABusinessUser() {
	_, err := suite.count(suite.anna.ID(), order.InProgress)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.count(kernel.NewUUID(), order.Completed)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesTestSuite))
}
