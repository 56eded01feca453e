package commands

import (
	"context"

	"servicebooking/internal/core/ports"
)

// RejectProviderCommandHandler handles provider rejection.
type RejectProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
	notifier   ports.Notifier
}

// NewRejectProviderCommandHandler creates a handler for provider rejection.
func NewRejectProviderCommandHandler(
	uowFactory ProviderUoWFactory,
	notifier ports.Notifier,
) RejectProviderCommandHandler {
	return RejectProviderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the rejection command.
// Only providers still awaiting approval can be rejected.
func (h *RejectProviderCommandHandler) Handle(ctx context.Context, cmd RejectProviderCommand) error {
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

	if err = aggregate.Reject(); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.UserID(), "Rejected",
		"Your provider application was rejected")

	return nil
}
