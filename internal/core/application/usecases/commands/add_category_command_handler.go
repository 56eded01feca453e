package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/catalog"
)

// AddCategoryCommandHandler handles catalog category creation.
type AddCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddCategoryCommandHandler creates a handler for category creation.
func NewAddCategoryCommandHandler(uowFactory CatalogUoWFactory) AddCategoryCommandHandler {
	return AddCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
// A duplicate name fails with errs.ErrValueIsInvalid from the repository's
// uniqueness constraint.
func (h *AddCategoryCommandHandler) Handle(ctx context.Context, cmd AddCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newCategory, err := catalog.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description(), cmd.Icon())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddCategory(ctx, newCategory); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
