package queries_test

import (
	"context"
	"testing"
	"time"

	"servicebooking/internal/adapters/out/postgres/bookingrepo"
	"servicebooking/internal/core/application/usecases/queries"
	"servicebooking/internal/core/domain/model/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type FilterBookingsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.FilterBookingsQueryHandler
}

func (suite *FilterBookingsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&bookingrepo.BookingDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewFilterBookingsQueryHandler(db)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *FilterBookingsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE bookings").Error
	suite.Require().NoError(err)
}

func (suite *FilterBookingsQueryHandlerTestSuite) seedBooking(
	customerName string,
	providerName string,
	status booking.Status,
	createdAt time.Time,
) bookingrepo.BookingDTO {
	dto := bookingrepo.BookingDTO{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		ServiceID:    uuid.New(),
		ScheduledAt:  createdAt.Add(24 * time.Hour),
		Location:     "22 Lake View Street",
		Status:       int(status),
		Amount:       499.0,
		CustomerName: customerName,
		ProviderName: providerName,
		CreatedAt:    createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_NoCriteria_ReturnsAllNewestFirst() {
	older := suite.seedBooking("Asha Rao", "", booking.Pending, time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))
	newer := suite.seedBooking("Vikram Singh", "", booking.Pending, time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local))

	query, err := queries.NewFilterBookingsQuery(nil, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(2), page.TotalElements)
	suite.Require().Len(page.Content, 2)
	suite.Equal(newer.ID, page.Content[0].ID.Bytes())
	suite.Equal(older.ID, page.Content[1].ID.Bytes())
	suite.True(page.Last)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_StatusFilter_MatchesExactly() {
	suite.seedBooking("Asha Rao", "", booking.Pending, time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))
	completed := suite.seedBooking("Vikram Singh", "Ravi Kumar", booking.Completed,
		time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local))

	query, err := queries.NewFilterBookingsQuery(map[string]string{"status": "COMPLETED"}, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	suite.Equal(completed.ID, page.Content[0].ID.Bytes())
	suite.Equal("COMPLETED", page.Content[0].Status)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_UnknownStatus_ReturnsError() {
	query, err := queries.NewFilterBookingsQuery(map[string]string{"status": "SHIPPED"}, 0, 10)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_CustomerName_CaseInsensitiveSubstring() {
	match := suite.seedBooking("Asha Rao", "", booking.Pending, time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))
	suite.seedBooking("Vikram Singh", "", booking.Pending, time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local))

	query, err := queries.NewFilterBookingsQuery(map[string]string{"customerName": "asha"}, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 1)
	suite.Equal(match.ID, page.Content[0].ID.Bytes())
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_DateRange_BoundariesAreInclusive() {
	lowerEdge := suite.seedBooking("Asha Rao", "", booking.Pending,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local))
	upperEdge := suite.seedBooking("Vikram Singh", "", booking.Pending,
		time.Date(2024, 1, 31, 23, 59, 59, 0, time.Local))
	suite.seedBooking("Meera Patel", "", booking.Pending,
		time.Date(2023, 12, 31, 23, 59, 59, 0, time.Local))
	suite.seedBooking("Arjun Nair", "", booking.Pending,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local))

	query, err := queries.NewFilterBookingsQuery(map[string]string{
		"fromDate": "2024-01-01",
		"toDate":   "2024-01-31",
	}, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 2, "Both boundary bookings should match, neither neighbor")
	suite.Equal(upperEdge.ID, page.Content[0].ID.Bytes())
	suite.Equal(lowerEdge.ID, page.Content[1].ID.Bytes())
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_SortOverride_AmountAscending() {
	cheap := suite.seedBooking("Asha Rao", "", booking.Pending, time.Date(2024, 3, 2, 9, 0, 0, 0, time.Local))
	suite.Require().NoError(suite.db.Model(&bookingrepo.BookingDTO{}).
		Where("id = ?", cheap.ID).Update("amount", 100.0).Error)
	suite.seedBooking("Vikram Singh", "", booking.Pending, time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local))

	query, err := queries.NewFilterBookingsQuery(map[string]string{
		"sortBy":    "amount",
		"sortOrder": "asc",
	}, 0, 10)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(page.Content, 2)
	suite.Equal(cheap.ID, page.Content[0].ID.Bytes())
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_UnknownSortColumn_ReturnsError() {
	query, err := queries.NewFilterBookingsQuery(map[string]string{"sortBy": "location; DROP TABLE bookings"}, 0, 10)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_Pagination_ReportsTotals() {
	for day := 1; day <= 5; day++ {
		suite.seedBooking("Asha Rao", "", booking.Pending,
			time.Date(2024, 3, day, 9, 0, 0, 0, time.Local))
	}

	query, err := queries.NewFilterBookingsQuery(nil, 1, 2)
	suite.Require().NoError(err)

	page, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(page.Content, 2)
	suite.Equal(int64(5), page.TotalElements)
	suite.Equal(3, page.TotalPages)
	suite.False(page.Last)
}

func (suite *FilterBookingsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.FilterBookingsQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewFilterBookingsQuery constructor")
}

func TestFilterBookingsQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(FilterBookingsQueryHandlerTestSuite))
}
