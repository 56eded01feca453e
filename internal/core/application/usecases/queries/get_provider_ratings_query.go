package queries

import (
	"errors"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetProviderRatingsQueryIsNotConstructed = errors.New(
		"GetProviderRatingsQuery must be created via NewGetProviderRatingsQuery constructor",
	)
)

// RatingBand selects which slice of a provider's ratings to return.
type RatingBand int

const (
	// AllRatings returns every rating for the provider.
	AllRatings RatingBand = iota

	// LowRatings returns ratings of 1 to 3 stars.
	LowRatings

	// TopRatings returns ratings of 4 or 5 stars.
	TopRatings
)

// GetProviderRatingsQuery retrieves a provider's ratings, newest first,
// optionally restricted to the low or top band.
type GetProviderRatingsQuery struct {
	providerID kernel.UUID
	band       RatingBand
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewGetProviderRatingsQuery creates a query for one provider's ratings.
func NewGetProviderRatingsQuery(
	providerID kernel.UUID,
	band RatingBand,
	page, size int,
) (GetProviderRatingsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderRatingsQuery{}, errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	if band < AllRatings || band > TopRatings {
		return GetProviderRatingsQuery{}, errs.NewValueIsInvalidError("band")
	}

	return GetProviderRatingsQuery{
		providerID: providerID,
		band:       band,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProviderRatingsQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderRatingsQueryIsNotConstructed)
}

// ProviderID returns the provider whose ratings are requested.
func (q GetProviderRatingsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Band returns the requested rating band.
func (q GetProviderRatingsQuery) Band() RatingBand {
	return q.band
}

// Page returns the zero-based page number.
func (q GetProviderRatingsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetProviderRatingsQuery) Size() int {
	return q.size
}

// RatingResponse is the rating read model.
type RatingResponse struct {
	ID         kernel.UUID `json:"id"`
	BookingID  kernel.UUID `json:"bookingId"`
	ProviderID kernel.UUID `json:"providerId"`
	Stars      int         `json:"stars"`
	Comment    string      `json:"comment"`
	CreatedAt  time.Time   `json:"createdAt"`
}
