package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/provider"
	"servicebooking/internal/core/ports"
)

// CancelBookingCommandHandler handles booking cancellation.
// Besides the customer, an assigned provider is told the job fell through.
type CancelBookingCommandHandler struct {
	uowFactory UpdateBookingUoWFactory
	notifier   ports.Notifier
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation.
func NewCancelBookingCommandHandler(
	uowFactory UpdateBookingUoWFactory,
	notifier ports.Notifier,
) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
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

	aggregate, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	bookingCustomer, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	var jobProvider *provider.Provider
	if aggregate.ProviderID() != nil {
		jobProvider, err = uow.ProviderRepository().Get(ctx, *aggregate.ProviderID())
		if err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, bookingCustomer.UserID(), "Booking Cancelled",
		"Your booking has been cancelled")
	if jobProvider != nil {
		h.notifier.Notify(ctx, jobProvider.UserID(), "Job Cancelled",
			"Your assigned job at "+aggregate.Location()+" was cancelled")
	}

	return nil
}
