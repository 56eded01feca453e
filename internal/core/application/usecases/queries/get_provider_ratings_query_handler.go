package queries

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/paging"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProviderRatingsQueryHandler retrieves provider ratings from the read store.
type GetProviderRatingsQueryHandler struct {
	db *gorm.DB
}

// NewGetProviderRatingsQueryHandler creates a handler for provider rating queries.
func NewGetProviderRatingsQueryHandler(db *gorm.DB) GetProviderRatingsQueryHandler {
	return GetProviderRatingsQueryHandler{db: db}
}

// Handle returns the requested band of the provider's ratings, newest first.
func (h GetProviderRatingsQueryHandler) Handle(
	ctx context.Context,
	query GetProviderRatingsQuery,
) (paging.Page[RatingResponse], error) {
	if err := query.Validate(); err != nil {
		return paging.Page[RatingResponse]{}, err
	}

	where := "provider_id = ?"
	switch query.Band() {
	case LowRatings:
		where += " AND stars IN (1, 2, 3)"
	case TopRatings:
		where += " AND stars >= 4"
	case AllRatings:
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM ratings WHERE "+where, query.ProviderID().Bytes()).
		Scan(&total).Error
	if err != nil {
		return paging.Page[RatingResponse]{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			booking_id,
			provider_id,
			stars,
			comment,
			created_at
		FROM ratings
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, query.ProviderID().Bytes(), query.Size(), paging.Offset(query.Page(), query.Size())).Rows()
	if err != nil {
		return paging.Page[RatingResponse]{}, err
	}
	defer rows.Close()

	ratings := make([]RatingResponse, 0)

	for rows.Next() {
		var ratingResp RatingResponse
		var id, bookingID, providerID uuid.UUID

		err = rows.Scan(
			&id,
			&bookingID,
			&providerID,
			&ratingResp.Stars,
			&ratingResp.Comment,
			&ratingResp.CreatedAt,
		)
		if err != nil {
			return paging.Page[RatingResponse]{}, err
		}

		ratingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return paging.Page[RatingResponse]{}, idErr
		}
		ratingResp.ID = ratingID

		ratingBookingID, idErr := kernel.UUIDFromBytes(bookingID[:])
		if idErr != nil {
			return paging.Page[RatingResponse]{}, idErr
		}
		ratingResp.BookingID = ratingBookingID

		ratingProviderID, idErr := kernel.UUIDFromBytes(providerID[:])
		if idErr != nil {
			return paging.Page[RatingResponse]{}, idErr
		}
		ratingResp.ProviderID = ratingProviderID

		ratings = append(ratings, ratingResp)
	}

	if err = rows.Err(); err != nil {
		return paging.Page[RatingResponse]{}, err
	}

	return paging.NewPage(ratings, query.Page(), query.Size(), total), nil
}
