package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAverageRatingQueryHandler computes rating averages in the store.
type GetAverageRatingQueryHandler struct {
	db *gorm.DB
}

// NewGetAverageRatingQueryHandler creates a handler for rating average queries.
func NewGetAverageRatingQueryHandler(db *gorm.DB) GetAverageRatingQueryHandler {
	return GetAverageRatingQueryHandler{db: db}
}

// Handle returns the provider's average stars and rating count.
// COALESCE keeps the average at 0.0 for providers nobody has rated yet.
func (h GetAverageRatingQueryHandler) Handle(
	ctx context.Context,
	query GetAverageRatingQuery,
) (GetAverageRatingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAverageRatingQueryResponse{}, err
	}

	var result struct {
		Avg   float64
		Count int64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(stars), 0) AS avg,
			COUNT(*) AS count
		FROM ratings
		WHERE provider_id = ?
	`, query.ProviderID().Bytes()).Scan(&result).Error
	if err != nil {
		return GetAverageRatingQueryResponse{}, err
	}

	return GetAverageRatingQueryResponse{
		ProviderID:    query.ProviderID(),
		AverageRating: result.Avg,
		TotalRatings:  result.Count,
	}, nil
}
