package queries

import (
	"errors"

	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
		"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
	)
)

// GetDashboardStatsQuery aggregates the admin dashboard counters.
// This is a parameterless query computed entirely in the store.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a dashboard statistics query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse carries the platform-wide counters shown on
// the admin dashboard. MonthlyRevenue sums payments recorded in the current
// calendar month.
type GetDashboardStatsQueryResponse struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalBookings     int64   `json:"totalBookings"`
	PendingBookings   int64   `json:"pendingBookings"`
	CompletedBookings int64   `json:"completedBookings"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
}
