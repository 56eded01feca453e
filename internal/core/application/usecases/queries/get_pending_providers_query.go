package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetPendingProvidersQueryIsNotConstructed = errors.New(
		"GetPendingProvidersQuery must be created via NewGetPendingProvidersQuery constructor",
	)
)

// GetPendingProvidersQuery retrieves providers awaiting approval review.
type GetPendingProvidersQuery struct {
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetPendingProvidersQuery creates a query for the approval backlog.
func NewGetPendingProvidersQuery(page, size int) (GetPendingProvidersQuery, error) {
	return GetPendingProvidersQuery{
		page:  page,
		size:  size,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPendingProvidersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingProvidersQueryIsNotConstructed)
}

// Page returns the zero-based page number.
func (q GetPendingProvidersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetPendingProvidersQuery) Size() int {
	return q.size
}

// ProviderResponse is the provider read model.
type ProviderResponse struct {
	ID               kernel.UUID `json:"id"`
	UserID           kernel.UUID `json:"userId"`
	Name             string      `json:"name"`
	SelectedServices string      `json:"selectedServices"`
	Status           string      `json:"status"`
	TotalEarnings    float64     `json:"totalEarnings"`
	CompletedJobs    int         `json:"completedJobs"`
	Rating           float64     `json:"rating"`
}
