package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListCategoriesQuery retrieves the full service category catalog.
// The catalog is small, so this query is not paginated.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListCategoriesQuery creates a catalog listing query.
func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

// CategoryResponse is the category read model.
type CategoryResponse struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
}
