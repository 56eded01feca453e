package commands

import (
	"errors"
	"strings"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrAddServiceItemCommandIsNotConstructed = errors.New(
		"AddServiceItemCommand must be created via NewAddServiceItemCommand constructor",
	)
	ErrServiceNameIsRequired = errors.New("service name is required")
	ErrBasePriceIsInvalid    = errors.New("base price must be greater than 0")
)

// AddServiceItemCommand represents a request to list a bookable service item
// under an existing category.
type AddServiceItemCommand struct { //nolint:recvcheck //using for validation
	serviceID   kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	basePrice   float64

	guard guard.ConstructorGuard
}

// NewAddServiceItemCommand creates a command to list a service item.
// Validates that the IDs are valid, the name is set, and the base price is
// positive.
func NewAddServiceItemCommand(
	serviceID kernel.UUID,
	categoryID kernel.UUID,
	name string,
	description string,
	basePrice float64,
) (AddServiceItemCommand, error) {
	serviceCommand := AddServiceItemCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		serviceCommand.setServiceID(serviceID),
		serviceCommand.setCategoryID(categoryID),
		serviceCommand.setName(name),
		serviceCommand.setBasePrice(basePrice),
	); err != nil {
		return AddServiceItemCommand{}, err
	}

	return serviceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddServiceItemCommand) Validate() error {
	return c.guard.Validate(ErrAddServiceItemCommandIsNotConstructed)
}

// ServiceID returns the unique identifier for the service item.
func (c AddServiceItemCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// CategoryID returns the parent category's identifier.
func (c AddServiceItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the service item name.
func (c AddServiceItemCommand) Name() string {
	return c.name
}

// Description returns the optional service description.
func (c AddServiceItemCommand) Description() string {
	return c.description
}

// BasePrice returns the listed price snapshotted into future bookings.
func (c AddServiceItemCommand) BasePrice() float64 {
	return c.basePrice
}

func (c *AddServiceItemCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}

func (c *AddServiceItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AddServiceItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrServiceNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddServiceItemCommand) setBasePrice(basePrice float64) error {
	if basePrice <= 0 {
		return ErrBasePriceIsInvalid
	}

	c.basePrice = basePrice
	return nil
}
