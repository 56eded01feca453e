package queries

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sortColumns whitelists the sortBy values callers may pass.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"scheduledAt": "scheduled_at",
	"amount":      "amount",
	"status":      "status",
}

// FilterBookingsQueryHandler executes dynamic booking searches against the
// read store. Predicates are combined with AND; the result is paginated.
type FilterBookingsQueryHandler struct {
	db *gorm.DB
}

// NewFilterBookingsQueryHandler creates a handler for booking filter queries.
func NewFilterBookingsQueryHandler(db *gorm.DB) FilterBookingsQueryHandler {
	return FilterBookingsQueryHandler{db: db}
}

// Handle executes the filter query and returns the matching page of bookings.
// Date bounds are inclusive: fromDate at midnight, toDate at 23:59:59 local.
func (h FilterBookingsQueryHandler) Handle(
	ctx context.Context,
	query FilterBookingsQuery,
) (paging.Page[BookingResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[BookingResponse]{}, err
	}

	criteria := query.Criteria()

	where := "1 = 1"
	args := make([]any, 0, 4)

	if status := criteria["status"]; status != "" {
		parsed, err := booking.StatusFromString(status)
		if err != nil {
			return paging.Page[BookingResponse]{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		where += " AND status = ?"
		args = append(args, int(parsed))
	}

	if name := criteria["customerName"]; name != "" {
		where += " AND customer_name ILIKE ?"
		args = append(args, "%"+name+"%")
	}

	if name := criteria["providerName"]; name != "" {
		where += " AND provider_name ILIKE ?"
		args = append(args, "%"+name+"%")
	}

	if fromDate := criteria["fromDate"]; fromDate != "" {
		day, err := time.ParseInLocation("2006-01-02", fromDate, time.Local)
		if err != nil {
			return paging.Page[BookingResponse]{}, errs.NewValueIsInvalidErrorWithCause("fromDate", err)
		}
		where += " AND created_at >= ?"
		args = append(args, day)
	}

	if toDate := criteria["toDate"]; toDate != "" {
		day, err := time.ParseInLocation("2006-01-02", toDate, time.Local)
		if err != nil {
			return paging.Page[BookingResponse]{}, errs.NewValueIsInvalidErrorWithCause("toDate", err)
		}
		where += " AND created_at <= ?"
		args = append(args, day.Add(23*time.Hour+59*time.Minute+59*time.Second))
	}

	sortColumn := "created_at"
	if sortBy := criteria["sortBy"]; sortBy != "" {
		column, ok := sortColumns[sortBy]
		if !ok {
			return paging.Page[BookingResponse]{}, errs.NewValueIsInvalidError("sortBy")
		}
		sortColumn = column
	}

	sortDirection := "DESC"
	if criteria["sortOrder"] == "asc" || criteria["sortOrder"] == "ASC" {
		sortDirection = "ASC"
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM bookings WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return paging.Page[BookingResponse]{}, err
	}

	listSQL := fmt.Sprintf(`
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
		WHERE %s
		ORDER BY %s %s
		LIMIT ? OFFSET ?
	`, where, sortColumn, sortDirection)

	listArgs := append(args, query.Size(), paging.Offset(query.Page(), query.Size()))

	rows, err := h.db.WithContext(ctx).Raw(listSQL, listArgs...).Rows()
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

// scanBookingRow maps a bookings row onto the shared read model.
// Expects the column order used by the booking list queries.
func scanBookingRow(rows *sql.Rows) (BookingResponse, error) {
	var bookingResp BookingResponse
	var id, customerID, serviceID uuid.UUID
	var providerID *uuid.UUID
	var status int

	err := rows.Scan(
		&id,
		&customerID,
		&providerID,
		&serviceID,
		&bookingResp.ScheduledAt,
		&bookingResp.Location,
		&status,
		&bookingResp.Amount,
		&bookingResp.CustomerName,
		&bookingResp.ProviderName,
		&bookingResp.CreatedAt,
	)
	if err != nil {
		return BookingResponse{}, err
	}

	bookingID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return BookingResponse{}, err
	}
	bookingResp.ID = bookingID

	bookingCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return BookingResponse{}, err
	}
	bookingResp.CustomerID = bookingCustomerID

	if providerID != nil {
		bookingProviderID, idErr := kernel.UUIDFromBytes((*providerID)[:])
		if idErr != nil {
			return BookingResponse{}, idErr
		}
		bookingResp.ProviderID = &bookingProviderID
	}

	bookingServiceID, err := kernel.UUIDFromBytes(serviceID[:])
	if err != nil {
		return BookingResponse{}, err
	}
	bookingResp.ServiceID = bookingServiceID

	bookingResp.Status = booking.Status(status).String()

	return bookingResp, nil
}
