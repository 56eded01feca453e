package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetAverageRatingQueryIsNotConstructed = errors.New(
		"GetAverageRatingQuery must be created via NewGetAverageRatingQuery constructor",
	)
)

// GetAverageRatingQuery computes a provider's average star rating.
// A provider without ratings averages to 0.0.
type GetAverageRatingQuery struct {
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAverageRatingQuery creates a query for one provider's rating average.
func NewGetAverageRatingQuery(providerID kernel.UUID) (GetAverageRatingQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetAverageRatingQuery{}, errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	return GetAverageRatingQuery{
		providerID: providerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAverageRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetAverageRatingQueryIsNotConstructed)
}

// ProviderID returns the provider whose average is requested.
func (q GetAverageRatingQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// GetAverageRatingQueryResponse carries the computed average and the number
// of ratings behind it.
type GetAverageRatingQueryResponse struct {
	ProviderID    kernel.UUID `json:"providerId"`
	AverageRating float64     `json:"averageRating"`
	TotalRatings  int64       `json:"totalRatings"`
}
