package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	database, err := pgtest.Start(ctx, postgres_adapter.NewGormConfig())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres_adapter.Migrate(ctx, database.DB))
	// A second run must find everything in place.
	suite.Require().NoError(postgres_adapter.Migrate(ctx, database.DB))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.OfferRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.ReviewRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().Error(uow.Commit(ctx), "Should error when committing without active transaction")
	suite.Require().Error(uow.Rollback(ctx), "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderFlow places an order and a review in one transaction
// and checks both are visible after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderFlow() {
	ctx := context.Background()
	business := suite.newUser("shop", identity.RoleBusiness)
	customer := suite.newUser("anna", identity.RoleCustomer)
	o, err := pgtest.NewOffer(business.ID(), "Logo design", "50", "150", "300")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, business))
	suite.Require().NoError(uow.UserRepository().Add(ctx, customer))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, o))

	detail, _ := o.Detail(offer.TierBasic)
	ord, err := order.NewOrder(kernel.NewUUID(), customer.ID(), business.ID(), detail)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, ord))

	r, err := review.NewReview(kernel.NewUUID(), customer.ID(), business, 5, "Great")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ReviewRepository().Add(ctx, r))

	suite.Equal(
		[]kernel.UUID{business.ID(), customer.ID(), o.ID(), ord.ID(), r.ID()},
		uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs(),
	)
	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	loaded, err := newUow.OrderRepository().Get(ctx, ord.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, loaded.Status())

	hasOrders, err := newUow.OrderRepository().ExistsForOffer(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(hasOrders)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	business := suite.newUser("shop", identity.RoleBusiness)
	o, err := pgtest.NewOffer(business.ID(), "Logo design", "50", "150", "300")
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.UserRepository().Add(ctx, business))
	suite.Require().NoError(uow.OfferRepository().Add(ctx, o))

	_, err = uow.OfferRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Rollback(ctx))
	suite.Empty(uow.(*postgres_adapter.GormUnitOfWork).TrackedIDs())

	newUow := suite.factory.Create()
	_, err = newUow.OfferRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "Offer should not exist after rollback")
	_, err = newUow.UserRepository().Get(ctx, business.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "User should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	user1 := suite.newUser("first", identity.RoleCustomer)
	user2 := suite.newUser("second", identity.RoleCustomer)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.UserRepository().Add(ctx, user1))
	suite.Require().NoError(uow2.UserRepository().Add(ctx, user2))

	_, err := uow1.UserRepository().Get(ctx, user2.ID())
	suite.Require().Error(err, "UOW1 should not see user2")
	_, err = uow2.UserRepository().Get(ctx, user1.ID())
	suite.Require().Error(err, "UOW2 should not see user1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.UserRepository().Get(ctx, user1.ID())
	suite.Require().NoError(err, "user1 should persist after commit")
	_, err = newUow.UserRepository().Get(ctx, user2.ID())
	suite.Require().Error(err, "user2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	user := suite.newUser("anna", identity.RoleCustomer)

	suite.Require().NoError(suite.factory.Create().UserRepository().Add(ctx, user))

	_, err := suite.factory.Create().UserRepository().Get(ctx, user.ID())
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) newUser(name string, role identity.Role) *identity.User {
	user, err := identity.NewUser(kernel.NewUUID(), name, name+"@example.com", "hash", role)
	suite.Require().NoError(err)
	return user
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
