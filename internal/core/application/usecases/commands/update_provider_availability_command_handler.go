package commands

import (
	"context"
)

// UpdateProviderAvailabilityCommandHandler handles the Online/Offline toggle.
// Only approved providers can change availability; suspended, rejected and
// pending providers are turned away by the domain FSM.
type UpdateProviderAvailabilityCommandHandler struct {
	uowFactory ProviderUoWFactory
}

// NewUpdateProviderAvailabilityCommandHandler creates a handler for the
// availability toggle.
func NewUpdateProviderAvailabilityCommandHandler(
	uowFactory ProviderUoWFactory,
) UpdateProviderAvailabilityCommandHandler {
	return UpdateProviderAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change.
func (h *UpdateProviderAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateProviderAvailabilityCommand) error {
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

	if err = aggregate.SetAvailability(cmd.Online()); err != nil {
		return err
	}

	if err = uow.ProviderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
