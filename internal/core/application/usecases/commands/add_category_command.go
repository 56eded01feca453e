package commands

import (
	"errors"
	"strings"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrAddCategoryCommandIsNotConstructed = errors.New(
		"AddCategoryCommand must be created via NewAddCategoryCommand constructor",
	)
	ErrCategoryNameIsRequired = errors.New("category name is required")
)

// AddCategoryCommand represents a request to add a catalog category.
// Category names are unique across the catalog.
type AddCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	icon        string

	guard guard.ConstructorGuard
}

// NewAddCategoryCommand creates a command to register a catalog category.
// Description and icon are optional.
func NewAddCategoryCommand(
	categoryID kernel.UUID,
	name string,
	description string,
	icon string,
) (AddCategoryCommand, error) {
	categoryCommand := AddCategoryCommand{
		description: description,
		icon:        icon,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryCommand.setCategoryID(categoryID),
		categoryCommand.setName(name),
	); err != nil {
		return AddCategoryCommand{}, err
	}

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddCategoryCommandIsNotConstructed)
}

// CategoryID returns the unique identifier for the category.
func (c AddCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the unique category name.
func (c AddCategoryCommand) Name() string {
	return c.name
}

// Description returns the optional category description.
func (c AddCategoryCommand) Description() string {
	return c.description
}

// Icon returns the optional icon reference.
func (c AddCategoryCommand) Icon() string {
	return c.icon
}

func (c *AddCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *AddCategoryCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrCategoryNameIsRequired
	}

	c.name = name
	return nil
}
