package queries_test

import (
	"context"
	"testing"
	"time"

	"servicebooking/internal/adapters/out/postgres/ratingrepo"
	"servicebooking/internal/core/application/usecases/queries"
	"servicebooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ProviderRatingQueriesTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	ratingsHandler queries.GetProviderRatingsQueryHandler
	averageHandler queries.GetAverageRatingQueryHandler
}

func (suite *ProviderRatingQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&ratingrepo.RatingDTO{})
	suite.Require().NoError(err)

	suite.ratingsHandler = queries.NewGetProviderRatingsQueryHandler(db)
	suite.averageHandler = queries.NewGetAverageRatingQueryHandler(db)
}

func (suite *ProviderRatingQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ProviderRatingQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE ratings").Error
	suite.Require().NoError(err)
}

func (suite *ProviderRatingQueriesTestSuite) seedRating(providerID uuid.UUID, stars int, at time.Time) {
	dto := ratingrepo.RatingDTO{
		ID:         uuid.New(),
		BookingID:  uuid.New(),
		ProviderID: providerID,
		Stars:      stars,
		Comment:    "fine work",
		CreatedAt:  at,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *ProviderRatingQueriesTestSuite) kernelID(id uuid.UUID) kernel.UUID {
	kernelID, err := kernel.UUIDFromBytes(id[:])
	suite.Require().NoError(err)
	return kernelID
}

func (suite *ProviderRatingQueriesTestSuite) TestAverage_NoRatings_ReturnsZero() {
	query, err := queries.NewGetAverageRatingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.averageHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(0.0, result.AverageRating, 0.0001)
	suite.Equal(int64(0), result.TotalRatings)
}

func (suite *ProviderRatingQueriesTestSuite) TestAverage_ComputesMeanForProviderOnly() {
	providerID := uuid.New()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.seedRating(providerID, 4, base)
	suite.seedRating(providerID, 5, base.Add(time.Hour))
	suite.seedRating(uuid.New(), 1, base)

	query, err := queries.NewGetAverageRatingQuery(suite.kernelID(providerID))
	suite.Require().NoError(err)

	result, err := suite.averageHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.InDelta(4.5, result.AverageRating, 0.0001)
	suite.Equal(int64(2), result.TotalRatings)
}

func (suite *ProviderRatingQueriesTestSuite) TestRatings_LowBand_ReturnsOneToThreeStars() {
	providerID := uuid.New()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for stars := 1; stars <= 5; stars++ {
		suite.seedRating(providerID, stars, base.Add(time.Duration(stars)*time.Hour))
	}

	query, err := queries.NewGetProviderRatingsQuery(suite.kernelID(providerID), queries.LowRatings, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.ratingsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(3), page.TotalElements)
	suite.Require().Len(page.Content, 3)
	for _, ratingResp := range page.Content {
		suite.LessOrEqual(ratingResp.Stars, 3)
	}
}

func (suite *ProviderRatingQueriesTestSuite) TestRatings_TopBand_ReturnsFourAndFiveStars() {
	providerID := uuid.New()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for stars := 1; stars <= 5; stars++ {
		suite.seedRating(providerID, stars, base.Add(time.Duration(stars)*time.Hour))
	}

	query, err := queries.NewGetProviderRatingsQuery(suite.kernelID(providerID), queries.TopRatings, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.ratingsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), page.TotalElements)
	suite.Require().Len(page.Content, 2)
	for _, ratingResp := range page.Content {
		suite.GreaterOrEqual(ratingResp.Stars, 4)
	}
}

func (suite *ProviderRatingQueriesTestSuite) TestRatings_AllBand_NewestFirst() {
	providerID := uuid.New()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.seedRating(providerID, 2, base)
	suite.seedRating(providerID, 5, base.Add(time.Hour))

	query, err := queries.NewGetProviderRatingsQuery(suite.kernelID(providerID), queries.AllRatings, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.ratingsHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 2)
	suite.Equal(5, page.Content[0].Stars)
	suite.Equal(2, page.Content[1].Stars)
}

func TestProviderRatingQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ProviderRatingQueriesTestSuite))
}
