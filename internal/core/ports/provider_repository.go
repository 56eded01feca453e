package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/provider"
)

// ProviderRepository defines the persistence contract for provider aggregates.
type ProviderRepository interface {
	// Add persists a new provider aggregate to storage.
	Add(ctx context.Context, aggregate *provider.Provider) error

	// Update persists changes to an existing provider aggregate.
	Update(ctx context.Context, aggregate *provider.Provider) error

	// Get retrieves a provider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*provider.Provider, error)

	// GetByUserID retrieves the provider profile owned by the given user.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*provider.Provider, error)

	// GetAllPendingApproval retrieves all providers awaiting an admin decision.
	GetAllPendingApproval(ctx context.Context) ([]*provider.Provider, error)

	// GetAllApproved retrieves all providers that passed admin review,
	// whatever their current availability.
	GetAllApproved(ctx context.Context) ([]*provider.Provider, error)
}
