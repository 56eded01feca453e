package commands

import (
	"context"

	"servicebooking/internal/core/domain/services"
	"servicebooking/internal/core/ports"
)

// AutoAssignProviderCommandHandler handles automatic provider selection.
// The matcher ranks the approved providers and the winner is assigned the
// same way an explicit assignment would be.
type AutoAssignProviderCommandHandler struct {
	uowFactory BookingProviderUoWFactory
	matcher    services.ProviderMatcher
	notifier   ports.Notifier
}

// NewAutoAssignProviderCommandHandler creates a handler for automatic assignment.
func NewAutoAssignProviderCommandHandler(
	uowFactory BookingProviderUoWFactory,
	matcher services.ProviderMatcher,
	notifier ports.Notifier,
) AutoAssignProviderCommandHandler {
	return AutoAssignProviderCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
		notifier:   notifier,
	}
}

// Handle processes the auto-assignment command. Returns
// services.ErrProviderNotFound when no approved provider is available.
func (h *AutoAssignProviderCommandHandler) Handle(ctx context.Context, cmd AutoAssignProviderCommand) error {
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

	candidates, err := uow.ProviderRepository().GetAllApproved(ctx)
	if err != nil {
		return err
	}

	matchedProvider, err := h.matcher.Match(assignedBooking, candidates)
	if err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, assignedBooking); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, matchedProvider.UserID(), "New Job Assigned",
		"You have been assigned a new job at "+assignedBooking.Location())

	return nil
}
