package queries

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCategoriesQueryHandler retrieves the category catalog from the read store.
type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewListCategoriesQueryHandler creates a handler for category listing queries.
func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle returns every category sorted by name.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categories := make([]CategoryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			icon
		FROM categories
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var categoryResp CategoryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&categoryResp.Name,
			&categoryResp.Description,
			&categoryResp.Icon,
		)
		if err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		categoryResp.ID = categoryID

		categories = append(categories, categoryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
