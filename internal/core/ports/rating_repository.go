package ports

import (
	"context"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for rating aggregates.
type RatingRepository interface {
	// Add persists a new rating. At most one rating may exist per booking,
	// a second rating for the same booking yields errs.ErrValueIsInvalid.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// Get retrieves a rating aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error)

	// AverageForProvider computes the mean star value over all ratings of the
	// provider together with the rating count. Returns a zero average for a
	// provider with no ratings.
	AverageForProvider(ctx context.Context, providerID kernel.UUID) (avg float64, count int64, err error)
}
