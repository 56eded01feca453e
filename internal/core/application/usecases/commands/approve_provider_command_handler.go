package commands

import (
	"context"

	"servicebooking/internal/core/ports"
)

// ApproveProviderCommandHandler handles provider approval.
type ApproveProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
	notifier   ports.Notifier
}

// NewApproveProviderCommandHandler creates a handler for provider approval.
func NewApproveProviderCommandHandler(
	uowFactory ProviderUoWFactory,
	notifier ports.Notifier,
) ApproveProviderCommandHandler {
	return ApproveProviderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the approval command.
// Only providers awaiting approval (or suspended ones being reinstated) can
// be approved.
func (h *ApproveProviderCommandHandler) Handle(ctx context.Context, cmd ApproveProviderCommand) error {
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

	aggregate, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = aggregate.Approve(); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.UserID(), "Approved",
		"Your provider application is approved")

	return nil
}
