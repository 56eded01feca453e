package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrListServiceItemsQueryIsNotConstructed = errors.New(
		"ListServiceItemsQuery must be created via NewListServiceItemsQuery constructor",
	)
)

// ListServiceItemsQuery retrieves service items, optionally scoped to one
// category, sorted by name.
type ListServiceItemsQuery struct {
	categoryID *kernel.UUID
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewListServiceItemsQuery creates a service item listing query.
// A nil categoryID lists items across all categories.
func NewListServiceItemsQuery(categoryID *kernel.UUID, page, size int) (ListServiceItemsQuery, error) {
	return ListServiceItemsQuery{
		categoryID: categoryID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListServiceItemsQuery) Validate() error {
	return q.guard.Validate(ErrListServiceItemsQueryIsNotConstructed)
}

// CategoryID returns the optional category scope.
func (q ListServiceItemsQuery) CategoryID() *kernel.UUID {
	return q.categoryID
}

// Page returns the zero-based page number.
func (q ListServiceItemsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q ListServiceItemsQuery) Size() int {
	return q.size
}

// ServiceItemResponse is the service item read model.
type ServiceItemResponse struct {
	ID          kernel.UUID `json:"id"`
	CategoryID  kernel.UUID `json:"categoryId"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	BasePrice   float64     `json:"basePrice"`
}
