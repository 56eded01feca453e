package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
// Provides methods for storing, retrieving, and transitioning booking entities
// through their lifecycle.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	// The booking must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	// The booking must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// UpdateGuarded persists the aggregate only if the stored row still holds
	// previousStatus. Returns false when another writer changed the status
	// first, so side effects tied to the transition must not run.
	UpdateGuarded(ctx context.Context, aggregate *booking.Booking, previousStatus booking.Status) (bool, error)

	// Get retrieves a booking aggregate by its unique identifier.
	// Returns the complete booking with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)
}
