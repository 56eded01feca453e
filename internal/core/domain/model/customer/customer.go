// Package customer provides the customer-profile aggregate. Customer profiles
// are leaf data: bookings reference them and snapshot the display name, but no
// lifecycle logic lives here.
package customer

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrNameIsRequired is returned when attempting to create a customer without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Customer represents a customer profile owned by exactly one user account.
type Customer struct {
	id     kernel.UUID
	userID kernel.UUID
	name   string
	email  string
	guard  guard.ConstructorGuard
}

// NewCustomer creates a new customer profile.
func NewCustomer(id kernel.UUID, userID kernel.UUID, name string, email string) (*Customer, error) {
	c := &Customer{
		email: email,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a customer profile from persistent storage.
func RestoreCustomer(id kernel.UUID, userID kernel.UUID, name string, email string) (*Customer, error) {
	return NewCustomer(id, userID, name, email)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer profile's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// UserID returns the owning user account's identifier.
func (c *Customer) UserID() kernel.UUID {
	return c.userID
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact address ("" if unset).
func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
