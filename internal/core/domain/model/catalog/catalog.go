// Package catalog provides the service-catalog aggregates: categories and the
// priced service items that feed booking creation. Catalog data is leaf data;
// the one invariant that matters downstream is that a service item's base
// price is positive, because bookings snapshot it as their amount.
package catalog

import (
	"errors"
	"fmt"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

var (
	// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
	// ErrServiceItemIsNotConstructed is returned when using an improperly initialized ServiceItem.
	ErrServiceItemIsNotConstructed = errors.New("ServiceItem must be created via NewServiceItem constructor")
	// ErrNameIsRequired is returned when a category or service item has no name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Category groups service items. Category names are unique platform-wide;
// the uniqueness itself is enforced by the store.
type Category struct {
	id          kernel.UUID
	name        string
	description string
	icon        string
	guard       guard.ConstructorGuard
}

// NewCategory creates a new service category.
func NewCategory(id kernel.UUID, name, description, icon string) (*Category, error) {
	c := &Category{
		description: description,
		icon:        icon,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a category from persistent storage.
func RestoreCategory(id kernel.UUID, name, description, icon string) (*Category, error) {
	return NewCategory(id, name, description, icon)
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID { return c.id }

// Name returns the category's unique name.
func (c *Category) Name() string { return c.name }

// Description returns the optional category description.
func (c *Category) Description() string { return c.description }

// Icon returns the optional icon reference.
func (c *Category) Icon() string { return c.icon }

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// ServiceItem is a priced, bookable service belonging to a category.
// BasePrice is the value bookings snapshot at creation time; editing it later
// never affects existing bookings.
type ServiceItem struct {
	id          kernel.UUID
	categoryID  kernel.UUID
	name        string
	description string
	basePrice   float64
	guard       guard.ConstructorGuard
}

// NewServiceItem creates a new priced service item.
func NewServiceItem(id kernel.UUID, categoryID kernel.UUID, name, description string, basePrice float64) (*ServiceItem, error) {
	s := &ServiceItem{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCategoryID(categoryID),
		s.setName(name),
		s.setBasePrice(basePrice),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreServiceItem reconstructs a service item from persistent storage.
func RestoreServiceItem(id kernel.UUID, categoryID kernel.UUID, name, description string, basePrice float64) (*ServiceItem, error) {
	return NewServiceItem(id, categoryID, name, description, basePrice)
}

// Validate ensures the ServiceItem instance was properly constructed.
func (s *ServiceItem) Validate() error {
	if s == nil {
		return ErrServiceItemIsNotConstructed
	}
	return s.guard.Validate(ErrServiceItemIsNotConstructed)
}

// ID returns the service item's unique identifier.
func (s *ServiceItem) ID() kernel.UUID { return s.id }

// CategoryID returns the owning category's identifier.
func (s *ServiceItem) CategoryID() kernel.UUID { return s.categoryID }

// Name returns the service item's name.
func (s *ServiceItem) Name() string { return s.name }

// Description returns the optional service description.
func (s *ServiceItem) Description() string { return s.description }

// BasePrice returns the current base price. Bookings copy this value at
// creation; it is never read back for existing bookings.
func (s *ServiceItem) BasePrice() float64 { return s.basePrice }

// ChangeBasePrice updates the base price for future bookings.
func (s *ServiceItem) ChangeBasePrice(basePrice float64) error {
	return s.setBasePrice(basePrice)
}

func (s *ServiceItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *ServiceItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	s.categoryID = categoryID
	return nil
}

func (s *ServiceItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *ServiceItem) setBasePrice(basePrice float64) error {
	if basePrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price is invalid",
			fmt.Errorf("%v is not greater than 0", basePrice))
	}
	s.basePrice = basePrice
	return nil
}
