package queries

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrGetCustomerBookingsQueryIsNotConstructed = errors.New(
		"GetCustomerBookingsQuery must be created via NewGetCustomerBookingsQuery constructor",
	)
)

// GetCustomerBookingsQuery retrieves a customer's bookings, newest first.
type GetCustomerBookingsQuery struct {
	customerID kernel.UUID
	page       int
	size       int

	guard guard.ConstructorGuard
}

// NewGetCustomerBookingsQuery creates a query for one customer's booking history.
func NewGetCustomerBookingsQuery(customerID kernel.UUID, page, size int) (GetCustomerBookingsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerBookingsQuery{}, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	return GetCustomerBookingsQuery{
		customerID: customerID,
		page:       page,
		size:       size,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerBookingsQueryIsNotConstructed)
}

// CustomerID returns the customer whose bookings are requested.
func (q GetCustomerBookingsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Page returns the zero-based page number.
func (q GetCustomerBookingsQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetCustomerBookingsQuery) Size() int {
	return q.size
}
