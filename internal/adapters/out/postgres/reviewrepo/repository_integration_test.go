package reviewrepo_test

import (
	"context"
	"testing"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/adapters/out/postgres/reviewrepo"
	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type ReviewRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *reviewrepo.GormReviewRepository
	business   *identity.User
	customer   *identity.User
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	database, err := pgtest.Start(ctx, postgres.NewGormConfig())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(postgres.Migrate(ctx, database.DB))
}

func (suite *ReviewRepositoryIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.database.Truncate())

	var err error
	suite.business, err = suite.database.SeedUser(ctx, "shop", identity.RoleBusiness)
	suite.Require().NoError(err)
	suite.customer, err = suite.database.SeedUser(ctx, "anna", identity.RoleCustomer)
	suite.Require().NoError(err)

	suite.repository = reviewrepo.NewGormReviewRepository(suite.database.DB, pgtest.NopTracker{})
}

func (suite *ReviewRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *ReviewRepositoryIntegrationTestSuite) newReview() *review.Review {
	r, err := review.NewReview(kernel.NewUUID(), suite.customer.ID(), suite.business, 4, "Solid work")
	suite.Require().NoError(err)
	return r
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_AndGet() {
	ctx := context.Background()
	r := suite.newReview()

	suite.Require().NoError(suite.repository.Add(ctx, r))

	loaded, err := suite.repository.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(4, loaded.Rating())
	suite.Equal("Solid work", loaded.Description())
	suite.True(loaded.IsWrittenBy(suite.customer.ID()))

	exists, err := suite.repository.ExistsForPair(ctx, suite.customer.ID(), suite.business.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestAdd_DuplicatePair() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newReview()))

	err := suite.repository.Add(ctx, suite.newReview())

	suite.Require().ErrorIs(err, review.ErrAlreadyReviewed)
	suite.True(errs.IsValidation(err))

	var count int64
	suite.Require().NoError(suite.database.DB.Model(&reviewrepo.ReviewDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestUpdate_RatingAndDescription() {
	ctx := context.Background()
	r := suite.newReview()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	rating := 2
	description := "Late delivery"
	suite.Require().NoError(r.Revise(&rating, &description))
	suite.Require().NoError(suite.repository.Update(ctx, r))

	loaded, err := suite.repository.GetForUpdate(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(2, loaded.Rating())
	suite.Equal("Late delivery", loaded.Description())
	suite.True(loaded.BusinessID().IsEqual(suite.business.ID()))
}

func (suite *ReviewRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	r := suite.newReview()
	suite.Require().NoError(suite.repository.Add(ctx, r))

	suite.Require().NoError(suite.repository.Delete(ctx, r.ID()))

	_, err := suite.repository.Get(ctx, r.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	exists, err := suite.repository.ExistsForPair(ctx, suite.customer.ID(), suite.business.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestReviewRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryIntegrationTestSuite))
}
