package ratingrepo

import (
	"context"
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/rating"
	"servicebooking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
// The gorm session must run with TranslateError enabled so unique violations
// arrive as gorm.ErrDuplicatedKey.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database.
// A second rating for the same booking fails with errs.ErrValueIsInvalid.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("bookingID", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a rating by ID.
func (r *GormRatingRepository) Get(ctx context.Context, id kernel.UUID) (*rating.Rating, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AverageForProvider computes the mean star value over all ratings of the
// provider in the store. A provider with no ratings averages to zero.
func (r *GormRatingRepository) AverageForProvider(
	ctx context.Context,
	providerID kernel.UUID,
) (float64, int64, error) {
	if err := providerID.Validate(); err != nil {
		return 0, 0, err
	}

	var result struct {
		Avg   float64
		Count int64
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(AVG(stars), 0) AS avg,
			COUNT(*) AS count
		FROM ratings
		WHERE provider_id = ?
	`, providerID.Bytes()).Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}

	return result.Avg, result.Count, nil
}
