package http

import "time"

// CreateBookingRequest is the body of POST /api/bookings.
type CreateBookingRequest struct {
	CustomerID  string    `json:"customerId" validate:"required,uuid"`
	ServiceID   string    `json:"serviceId" validate:"required,uuid"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
	Location    string    `json:"location" validate:"required"`
}

// SubmitRatingRequest is the body of POST /api/ratings.
type SubmitRatingRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
	Stars     int    `json:"stars" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// RecordPaymentRequest is the body of POST /api/payments.
type RecordPaymentRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
	Method    string `json:"method" validate:"required,oneof=CASH UPI CARD"`
}

// AddCategoryRequest is the body of POST /api/categories.
type AddCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AddServiceItemRequest is the body of POST /api/services.
type AddServiceItemRequest struct {
	CategoryID  string  `json:"categoryId" validate:"required,uuid"`
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	BasePrice   float64 `json:"basePrice" validate:"required,gt=0"`
}

// IDResponse acknowledges a creation with the new aggregate identifier.
type IDResponse struct {
	ID string `json:"id"`
}
