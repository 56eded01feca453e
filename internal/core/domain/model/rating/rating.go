// Package rating provides the Rating aggregate for provider reviews.
// Ratings are write-once: a rating is created for a booking, never updated or
// deleted, and at most one rating exists per booking. The provider reference
// is denormalized from the booking for query efficiency.
package rating

import (
	"errors"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

// Star-count bounds and the fixed quality-triage bands.
const (
	MinStars = 1
	MaxStars = 5

	// LowBandMax is the highest star count still counted as a low rating.
	// Low = stars in [1,3], top = stars in [4,5]; the bands are fixed.
	LowBandMax = 3
)

var (
	// ErrRatingIsNotConstructed is returned when using an improperly initialized Rating.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")
)

// Rating is one customer's star rating of a provider for a single booking.
type Rating struct {
	id         kernel.UUID
	bookingID  kernel.UUID
	providerID kernel.UUID
	stars      int
	comment    string
	createdAt  time.Time
	guard      guard.ConstructorGuard
}

// NewRating creates a rating for a booking. The provider ID must be the
// booking's assigned provider; the caller resolves it because the booking
// lives in a different aggregate.
func NewRating(id kernel.UUID, bookingID kernel.UUID, providerID kernel.UUID, stars int, comment string) (*Rating, error) {
	r := &Rating{
		comment:   comment,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setBookingID(bookingID),
		r.setProviderID(providerID),
		r.setStars(stars),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a rating from persistent storage.
func RestoreRating(
	id kernel.UUID,
	bookingID kernel.UUID,
	providerID kernel.UUID,
	stars int,
	comment string,
	createdAt time.Time,
) (*Rating, error) {
	r, err := NewRating(id, bookingID, providerID, stars, comment)
	if err != nil {
		return nil, err
	}
	r.createdAt = createdAt
	return r, nil
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID { return r.id }

// BookingID returns the rated booking's identifier.
func (r *Rating) BookingID() kernel.UUID { return r.bookingID }

// ProviderID returns the rated provider's identifier (denormalized).
func (r *Rating) ProviderID() kernel.UUID { return r.providerID }

// Stars returns the star count, always within [1,5].
func (r *Rating) Stars() int { return r.stars }

// Comment returns the optional free-text comment.
func (r *Rating) Comment() string { return r.comment }

// CreatedAt returns the creation timestamp.
func (r *Rating) CreatedAt() time.Time { return r.createdAt }

// IsLow reports whether the rating falls in the fixed low band (1-3 stars).
func (r *Rating) IsLow() bool { return r.stars <= LowBandMax }

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	r.bookingID = bookingID
	return nil
}

func (r *Rating) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	r.providerID = providerID
	return nil
}

func (r *Rating) setStars(stars int) error {
	if stars < MinStars || stars > MaxStars {
		return errs.NewValueIsOutOfRangeError("stars", stars, MinStars, MaxStars)
	}
	r.stars = stars
	return nil
}
