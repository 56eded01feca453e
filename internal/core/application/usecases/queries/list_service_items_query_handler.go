package queries

import (
	"context"
	"database/sql"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListServiceItemsQueryHandler retrieves service items from the read store.
type ListServiceItemsQueryHandler struct {
	db *gorm.DB
}

// NewListServiceItemsQueryHandler creates a handler for service item listings.
func NewListServiceItemsQueryHandler(db *gorm.DB) ListServiceItemsQueryHandler {
	return ListServiceItemsQueryHandler{db: db}
}

// Handle returns a page of service items sorted by name, optionally scoped
// to a single category.
func (h ListServiceItemsQueryHandler) Handle(
	ctx context.Context,
	query ListServiceItemsQuery,
) (paging.Page[ServiceItemResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[ServiceItemResponse]{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 1)

	if categoryID := query.CategoryID(); categoryID != nil {
		where = "category_id = ?"
		args = append(args, categoryID.Bytes())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM service_items WHERE "+where, args...).
		Scan(&total).Error
	if err != nil {
		return paging.Page[ServiceItemResponse]{}, err
	}

	listArgs := append(args, query.Size(), paging.Offset(query.Page(), query.Size()))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			category_id,
			name,
			description,
			base_price
		FROM service_items
		WHERE `+where+`
		ORDER BY name
		LIMIT ? OFFSET ?
	`, listArgs...).Rows()
	if err != nil {
		return paging.Page[ServiceItemResponse]{}, err
	}
	defer rows.Close()

	items := make([]ServiceItemResponse, 0)

	for rows.Next() {
		itemResp, scanErr := scanServiceItemRow(rows)
		if scanErr != nil {
			return paging.Page[ServiceItemResponse]{}, scanErr
		}
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return paging.Page[ServiceItemResponse]{}, err
	}

	return paging.NewPage(items, query.Page(), query.Size(), total), nil
}

// scanServiceItemRow maps a service_items row onto the read model.
func scanServiceItemRow(rows *sql.Rows) (ServiceItemResponse, error) {
	var itemResp ServiceItemResponse
	var id, categoryID uuid.UUID

	err := rows.Scan(
		&id,
		&categoryID,
		&itemResp.Name,
		&itemResp.Description,
		&itemResp.BasePrice,
	)
	if err != nil {
		return ServiceItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ServiceItemResponse{}, err
	}
	itemResp.ID = itemID

	itemCategoryID, err := kernel.UUIDFromBytes(categoryID[:])
	if err != nil {
		return ServiceItemResponse{}, err
	}
	itemResp.CategoryID = itemCategoryID

	return itemResp, nil
}
