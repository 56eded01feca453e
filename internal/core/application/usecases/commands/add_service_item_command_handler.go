package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/catalog"
)

// AddServiceItemCommandHandler handles service item listing.
type AddServiceItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddServiceItemCommandHandler creates a handler for service item listing.
func NewAddServiceItemCommandHandler(uowFactory CatalogUoWFactory) AddServiceItemCommandHandler {
	return AddServiceItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the listing command.
// The parent category must exist.
func (h *AddServiceItemCommandHandler) Handle(ctx context.Context, cmd AddServiceItemCommand) error {
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

	parentCategory, err := uow.CatalogRepository().GetCategory(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	newItem, err := catalog.NewServiceItem(
		cmd.ServiceID(),
		parentCategory.ID(),
		cmd.Name(),
		cmd.Description(),
		cmd.BasePrice(),
	)
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddServiceItem(ctx, newItem); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
