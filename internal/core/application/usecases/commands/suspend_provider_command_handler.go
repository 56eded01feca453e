package commands

import (
	"context"

	"servicebooking/internal/core/ports"
)

// SuspendProviderCommandHandler handles provider suspension.
type SuspendProviderCommandHandler struct {
	uowFactory ProviderUoWFactory
	notifier   ports.Notifier
}

// NewSuspendProviderCommandHandler creates a handler for provider suspension.
func NewSuspendProviderCommandHandler(
	uowFactory ProviderUoWFactory,
	notifier ports.Notifier,
) SuspendProviderCommandHandler {
	return SuspendProviderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the suspension command.
// Only approved providers can be suspended; suspending twice is rejected.
func (h *SuspendProviderCommandHandler) Handle(ctx context.Context, cmd SuspendProviderCommand) error {
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

	if err = aggregate.Suspend(); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, aggregate.UserID(), "Account Suspended",
		"Your provider account has been suspended")

	return nil
}
