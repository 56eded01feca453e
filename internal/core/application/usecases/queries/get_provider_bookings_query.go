package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetProviderBookingsQueryIsNotConstructed = errors.New(
		"GetProviderBookingsQuery must be created via NewGetProviderBookingsQuery constructor",
	)
)

// GetProviderBookingsQuery retrieves the jobs assigned to a provider, newest first.
type GetProviderBookingsQuery struct {
	providerID kernel.UUID
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewGetProviderBookingsQuery creates a query for one provider's assigned jobs.
func NewGetProviderBookingsQuery(providerID kernel.UUID, page, size int) (GetProviderBookingsQuery, error) {
	if err := providerID.Validate(); err != nil {
		return GetProviderBookingsQuery{}, errs.NewValueIsRequiredErrorWithCause("providerID", err)
	}

	return GetProviderBookingsQuery{
		providerID: providerID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProviderBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetProviderBookingsQueryIsNotConstructed)
}

// ProviderID returns the provider whose jobs are requested.
func (q GetProviderBookingsQuery) ProviderID() kernel.UUID {
	return q.providerID
}

// Page returns the zero-based page number.
func (q GetProviderBookingsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetProviderBookingsQuery) Size() int {
	return q.size
}
