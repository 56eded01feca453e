package queries

import (
	"context"

	"servicebooking/internal/pkg/paging"

	"gorm.io/gorm"
)

// GetCustomerBookingsQueryHandler retrieves one customer's booking history.
type GetCustomerBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerBookingsQueryHandler creates a handler for customer booking queries.
func NewGetCustomerBookingsQueryHandler(db *gorm.DB) GetCustomerBookingsQueryHandler {
	return GetCustomerBookingsQueryHandler{db: db}
}

// Handle returns the customer's bookings, newest first.
func (h GetCustomerBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerBookingsQuery,
) (paging.Page[BookingResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[BookingResponse]{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM bookings WHERE customer_id = ?", query.CustomerID().Bytes()).
		Scan(&total).Error
	if err != nil {
		return paging.Page[BookingResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			provider_id,
			service_id,
			scheduled_at,
			location,
			status,
			amount,
			customer_name,
			provider_name,
			created_at
		FROM bookings
		WHERE customer_id = ?
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.CustomerID().Bytes(), query.Size(), paging.Offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return paging.Page[BookingResponse]{}, err
	}
	defer rows.Close()

	bookings := make([]BookingResponse, 0)

	for rows.Next() {
		bookingResp, scanErr := scanBookingRow(rows)
		if scanErr != nil {
			return paging.Page[BookingResponse]{}, scanErr
		}
		bookings = append(bookings, bookingResp)
	}

	if err = rows.Err(); err != nil {
		return paging.Page[BookingResponse]{}, err
	}

	return paging.NewPage(bookings, query.Page(), query.Size(), total), nil
}
