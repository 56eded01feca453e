package commands

import (
	"context"
	"errors"

	"servicebooking/internal/core/ports"
	"servicebooking/internal/pkg/errs"
)

// ErrConcurrentStatusChange is returned when the stored booking status moved
// between the read and the guarded write of a completion.
var ErrConcurrentStatusChange = errors.New("booking status was changed concurrently")

// UpdateBookingStatusCommandHandler handles booking lifecycle transitions.
// On completion the provider is credited with the booking amount in the same
// transaction; the booking write is guarded on the previously read status so
// two racing completions credit the provider exactly once.
type UpdateBookingStatusCommandHandler struct {
	uowFactory UpdateBookingUoWFactory
	notifier   ports.Notifier
}

// NewUpdateBookingStatusCommandHandler creates a handler for status transitions.
func NewUpdateBookingStatusCommandHandler(
	uowFactory UpdateBookingUoWFactory,
	notifier ports.Notifier,
) UpdateBookingStatusCommandHandler {
	return UpdateBookingStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the status transition command.
// Illegal state machine edges fail with errs.ErrValueIsInvalid. A guarded
// write that misses fails with ErrConcurrentStatusChange and nothing is
// persisted.
func (h *UpdateBookingStatusCommandHandler) Handle(ctx context.Context, cmd UpdateBookingStatusCommand) error {
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

	previousStatus := aggregate.Status()
	completed, err := aggregate.TransitionTo(cmd.Status())
	if err != nil {
		return err
	}

	if completed {
		swapped, guardErr := uow.BookingRepository().UpdateGuarded(ctx, aggregate, previousStatus)
		if guardErr != nil {
			return guardErr
		}
		if !swapped {
			return errs.NewValueIsInvalidErrorWithCause("status", ErrConcurrentStatusChange)
		}

		jobProvider, provErr := uow.ProviderRepository().Get(ctx, *aggregate.ProviderID())
		if provErr != nil {
			return provErr
		}

		if err = jobProvider.RecordCompletedJob(aggregate.Amount()); err != nil {
			return err
		}

		if err = uow.ProviderRepository().Update(ctx, jobProvider); err != nil {
			return err
		}
	} else {
		if err = uow.BookingRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	bookingCustomer, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, bookingCustomer.UserID(), "Booking "+aggregate.Status().String(),
		"Your booking status changed to "+aggregate.Status().String())

	return nil
}
