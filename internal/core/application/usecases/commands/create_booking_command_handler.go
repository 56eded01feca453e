package commands

import (
	"context"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/ports"
)

// CreateBookingCommandHandler handles the business logic for booking creation.
// Resolves the customer and the service item, snapshots the customer name and
// the service base price into the booking, and creates it in "pending" status.
type CreateBookingCommandHandler struct {
	uowFactory CreateBookingUoWFactory
	notifier   ports.Notifier
}

// NewCreateBookingCommandHandler creates a handler for booking creation operations.
// Requires a CreateBookingUoWFactory for transactional persistence and a
// Notifier for the confirmation message.
func NewCreateBookingCommandHandler(
	uowFactory CreateBookingUoWFactory,
	notifier ports.Notifier,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the booking creation command.
// The customer and the service item must exist. The booking amount is the
// service base price at creation time and never changes afterwards.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
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

	bookingCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	serviceItem, err := uow.CatalogRepository().GetServiceItem(ctx, cmd.ServiceID())
	if err != nil {
		return err
	}

	newBooking, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.CustomerID(),
		cmd.ServiceID(),
		cmd.ScheduledAt(),
		cmd.Location(),
		serviceItem.BasePrice(),
		bookingCustomer.Name(),
	)
	if err != nil {
		return err
	}

	if err = uow.BookingRepository().Add(ctx, newBooking); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, bookingCustomer.UserID(), "Booking Created",
		"Your booking for "+serviceItem.Name()+" has been created")

	return nil
}
