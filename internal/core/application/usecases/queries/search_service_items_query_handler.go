package queries

import (
	"context"

	"gorm.io/gorm"
)

// SearchServiceItemsQueryHandler runs keyword searches over the catalog.
type SearchServiceItemsQueryHandler struct {
	db *gorm.DB
}

// NewSearchServiceItemsQueryHandler creates a handler for catalog searches.
func NewSearchServiceItemsQueryHandler(db *gorm.DB) SearchServiceItemsQueryHandler {
	return SearchServiceItemsQueryHandler{db: db}
}

// Handle returns service items whose name or description matches the keyword.
func (h SearchServiceItemsQueryHandler) Handle(
	ctx context.Context,
	query SearchServiceItemsQuery,
) ([]ServiceItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Keyword() + "%"

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category_id,
			name,
			description,
			base_price
		FROM service_items
		WHERE name ILIKE ? OR description ILIKE ?
		ORDER BY name
	`, pattern, pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ServiceItemResponse, 0)

	for rows.Next() {
		itemResp, scanErr := scanServiceItemRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
