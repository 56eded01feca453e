// Package ratingrepo provides data transfer objects and mapping functions for rating persistence.
package ratingrepo

import (
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
// BookingID carries a unique index: one rating per booking, enforced by the
// store rather than by a read-then-write check.
type RatingDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ProviderID uuid.UUID `gorm:"type:uuid;index"`
	Stars      int
	Comment    string
	CreatedAt  time.Time
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:         aggregate.ID().Bytes(),
		BookingID:  aggregate.BookingID().Bytes(),
		ProviderID: aggregate.ProviderID().Bytes(),
		Stars:      aggregate.Stars(),
		Comment:    aggregate.Comment(),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, bookingID, providerID, dto.Stars, dto.Comment, dto.CreatedAt)
}
