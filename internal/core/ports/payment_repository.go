package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
type PaymentRepository interface {
	// Add persists a new payment record.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByBookingID retrieves the payment recorded for a booking.
	GetByBookingID(ctx context.Context, bookingID kernel.UUID) (*payment.Payment, error)
}
