package commands

import (
	"context"

	"servicebooking/internal/core/ports"
)

// AssignProviderCommandHandler handles the business logic for provider assignment.
// Moves the booking to "accepted", snapshots the provider name, and notifies
// the provider about the new job.
type AssignProviderCommandHandler struct {
	uowFactory BookingProviderUoWFactory
	notifier   ports.Notifier
}

// NewAssignProviderCommandHandler creates a handler for provider assignment.
func NewAssignProviderCommandHandler(
	uowFactory BookingProviderUoWFactory,
	notifier ports.Notifier,
) AssignProviderCommandHandler {
	return AssignProviderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the assignment command.
// The booking and the provider must both exist. Assignment is rejected once
// the booking reached a terminal status.
func (h *AssignProviderCommandHandler) Handle(ctx context.Context, cmd AssignProviderCommand) error {
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

	assignedBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	assignedProvider, err := uow.ProviderRepository().Get(ctx, cmd.ProviderID())
	if err != nil {
		return err
	}

	if err = assignedBooking.AssignProvider(assignedProvider.ID(), assignedProvider.Name()); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, assignedBooking); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, assignedProvider.UserID(), "New Job Assigned",
		"You have been assigned a new job at "+assignedBooking.Location())

	return nil
}
