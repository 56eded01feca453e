package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/customer"
	"servicebooking/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByUserID retrieves the customer profile owned by the given user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*customer.Customer, error)
}
