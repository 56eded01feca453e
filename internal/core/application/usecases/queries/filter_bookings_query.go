package queries

import (
	"errors"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrFilterBookingsQueryIsNotConstructed = errors.New(
		"FilterBookingsQuery must be created via NewFilterBookingsQuery constructor",
	)
)

// FilterBookingsQuery retrieves a page of bookings matching dynamic criteria.
// Criteria keys: status (exact), customerName/providerName (case-insensitive
// substring), fromDate/toDate (inclusive createdAt date range), sortBy/sortOrder.
// Unknown keys are ignored.
//
// Example:
//
//	query, err := NewFilterBookingsQuery(map[string]string{
//	    "status":   "COMPLETED",
//	    "fromDate": "2024-01-01",
//	    "toDate":   "2024-01-31",
//	}, 0, 20)
//	if err != nil {
//	    return err
//	}
//
//	page, err := handler.Handle(ctx, query)
type FilterBookingsQuery struct {
	criteria map[string]string
	page     int
	size     int

	guard guard.ConstructorGuard
}

// NewFilterBookingsQuery creates a booking filter query.
// A nil criteria map means no predicates; page and size drive pagination.
func NewFilterBookingsQuery(criteria map[string]string, page, size int) (FilterBookingsQuery, error) {
	if criteria == nil {
		criteria = make(map[string]string)
	}

	return FilterBookingsQuery{
		criteria: criteria,
		page:     page,
		size:     size,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q FilterBookingsQuery) Validate() error {
	return q.guard.Validate(ErrFilterBookingsQueryIsNotConstructed)
}

// Criteria returns the filter criteria map.
func (q FilterBookingsQuery) Criteria() map[string]string {
	return q.criteria
}

// Page returns the zero-based page number.
func (q FilterBookingsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q FilterBookingsQuery) Size() int {
	return q.size
}

// BookingResponse is the read model shared by the booking list queries.
type BookingResponse struct {
	ID           kernel.UUID  `json:"id"`
	CustomerID   kernel.UUID  `json:"customerId"`
	ProviderID   *kernel.UUID `json:"providerId"`
	ServiceID    kernel.UUID  `json:"serviceId"`
	ScheduledAt  time.Time    `json:"scheduledAt"`
	Location     string       `json:"location"`
	Status       string       `json:"status"`
	Amount       float64      `json:"amount"`
	CustomerName string       `json:"customerName"`
	ProviderName string       `json:"providerName"`
	CreatedAt    time.Time    `json:"createdAt"`
}
