package queries

import (
	"context"
	"time"

	"servicebooking/internal/core/domain/model/booking"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler computes the admin dashboard counters.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle computes the platform counters in a single round trip.
// Monthly revenue covers payments from the start of the current month.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var result struct {
		TotalCustomers    int64
		TotalProviders    int64
		TotalBookings     int64
		PendingBookings   int64
		CompletedBookings int64
		MonthlyRevenue    float64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM customers) AS total_customers,
			(SELECT COUNT(*) FROM providers) AS total_providers,
			(SELECT COUNT(*) FROM bookings) AS total_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = ?) AS pending_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = ?) AS completed_bookings,
			(SELECT COALESCE(SUM(amount), 0) FROM payments WHERE created_at >= ?) AS monthly_revenue
	`, int(booking.Pending), int(booking.Completed), monthStart).Scan(&result).Error
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return GetDashboardStatsQueryResponse{
		TotalUsers:        result.TotalCustomers + result.TotalProviders,
		TotalBookings:     result.TotalBookings,
		PendingBookings:   result.PendingBookings,
		CompletedBookings: result.CompletedBookings,
		MonthlyRevenue:    result.MonthlyRevenue,
	}, nil
}
