package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "servicebooking/internal/adapters/out/postgres"
	"servicebooking/internal/adapters/out/postgres/catalogrepo"
	"servicebooking/internal/adapters/out/postgres/providerrepo"
	"servicebooking/internal/adapters/out/postgres/ratingrepo"
	"servicebooking/internal/core/domain/model/catalog"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/core/domain/model/rating"
	"servicebooking/internal/core/ports"
	"servicebooking/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConstraintsIntegrationTestSuite verifies the database-enforced uniqueness
// rules (one rating per booking, unique category names, both depending on
// TranslateError being enabled on the gorm session) and the status-filtered
// provider queries.
type ConstraintsIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *ConstraintsIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&ratingrepo.RatingDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ServiceItemDTO{},
		&providerrepo.ProviderDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *ConstraintsIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ratings, categories, service_items, providers").Error
	suite.Require().NoError(err)
}

func (suite *ConstraintsIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ConstraintsIntegrationTestSuite) addRating(bookingID, providerID kernel.UUID, stars int) error {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := rating.NewRating(kernel.NewUUID(), bookingID, providerID, stars, "")
	suite.Require().NoError(err)

	if err := uow.RatingRepository().Add(ctx, aggregate); err != nil {
		suite.Require().NoError(uow.Rollback(ctx))
		return err
	}
	return uow.Commit(ctx)
}

func (suite *ConstraintsIntegrationTestSuite) addCategory(name string) error {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := catalog.NewCategory(kernel.NewUUID(), name, "", "")
	suite.Require().NoError(err)

	if err := uow.CatalogRepository().AddCategory(ctx, aggregate); err != nil {
		suite.Require().NoError(uow.Rollback(ctx))
		return err
	}
	return uow.Commit(ctx)
}

func (suite *ConstraintsIntegrationTestSuite) addProvider(name string, status provider.ApprovalStatus) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate, err := provider.RestoreProvider(
		kernel.NewUUID(), kernel.NewUUID(), name, "plumbing", status, 0, 0, 0)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ProviderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *ConstraintsIntegrationTestSuite) TestApprovedProvidersIncludeEveryPostReviewStatus() {
	suite.addProvider("Pending Pete", provider.PendingApproval)
	suite.addProvider("Rejected Rita", provider.Rejected)
	suite.addProvider("Approved Alice", provider.Approved)
	suite.addProvider("Online Oscar", provider.Online)
	suite.addProvider("Offline Olga", provider.Offline)
	suite.addProvider("Suspended Sam", provider.Suspended)

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	approved, err := uow.ProviderRepository().GetAllApproved(ctx)
	suite.Require().NoError(err)

	names := make([]string, 0, len(approved))
	for _, aggregate := range approved {
		names = append(names, aggregate.Name())
	}
	suite.ElementsMatch(
		[]string{"Approved Alice", "Online Oscar", "Offline Olga", "Suspended Sam"}, names)

	pending, err := uow.ProviderRepository().GetAllPendingApproval(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("Pending Pete", pending[0].Name())
}

func (suite *ConstraintsIntegrationTestSuite) TestSecondRatingForBookingIsRejected() {
	bookingID := kernel.NewUUID()
	providerID := kernel.NewUUID()

	suite.Require().NoError(suite.addRating(bookingID, providerID, 5))

	err := suite.addRating(bookingID, providerID, 1)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)

	var count int64
	suite.Require().NoError(suite.db.Model(&ratingrepo.RatingDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *ConstraintsIntegrationTestSuite) TestRatingsForDifferentBookingsCoexist() {
	providerID := kernel.NewUUID()

	suite.Require().NoError(suite.addRating(kernel.NewUUID(), providerID, 5))
	suite.Require().NoError(suite.addRating(kernel.NewUUID(), providerID, 3))

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	avg, count, err := uow.RatingRepository().AverageForProvider(ctx, providerID)
	suite.Require().NoError(err)
	suite.InDelta(4.0, avg, 0.001)
	suite.Equal(int64(2), count)
}

func (suite *ConstraintsIntegrationTestSuite) TestAverageIsZeroWithoutRatings() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	avg, count, err := uow.RatingRepository().AverageForProvider(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Zero(avg)
	suite.Zero(count)
}

func (suite *ConstraintsIntegrationTestSuite) TestDuplicateCategoryNameIsRejected() {
	suite.Require().NoError(suite.addCategory("Home Cleaning"))

	err := suite.addCategory("Home Cleaning")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *ConstraintsIntegrationTestSuite) TestDistinctCategoryNamesCoexist() {
	suite.Require().NoError(suite.addCategory("Home Cleaning"))
	suite.Require().NoError(suite.addCategory("Plumbing"))

	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	categories, err := uow.CatalogRepository().GetAllCategories(ctx)
	suite.Require().NoError(err)
	suite.Len(categories, 2)
}

func TestConstraintsIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ConstraintsIntegrationTestSuite))
}
