package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/catalog"
	"servicebooking/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for the service catalog.
// Covers both categories and the service items listed under them.
type CatalogRepository interface {
	// AddCategory persists a new category. Category names are unique, a
	// duplicate name yields errs.ErrValueIsInvalid.
	AddCategory(ctx context.Context, aggregate *catalog.Category) error

	// GetCategory retrieves a category by its unique identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// GetAllCategories retrieves all catalog categories.
	GetAllCategories(ctx context.Context) ([]*catalog.Category, error)

	// AddServiceItem persists a new service item under an existing category.
	AddServiceItem(ctx context.Context, aggregate *catalog.ServiceItem) error

	// GetServiceItem retrieves a service item by its unique identifier.
	GetServiceItem(ctx context.Context, id kernel.UUID) (*catalog.ServiceItem, error)

	// GetServiceItemsByCategory retrieves all service items in one category.
	GetServiceItemsByCategory(ctx context.Context, categoryID kernel.UUID) ([]*catalog.ServiceItem, error)
}
