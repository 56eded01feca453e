package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrCancelBookingCommandIsNotConstructed = errors.New(
	"CancelBookingCommand must be created via NewCancelBookingCommand constructor",
)

// CancelBookingCommand represents a request to cancel a booking.
// Cancellation is allowed from "pending" and "accepted"; completed and
// already cancelled bookings cannot be cancelled.
type CancelBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelBookingCommand creates a command to cancel a booking.
func NewCancelBookingCommand(bookingID kernel.UUID) (CancelBookingCommand, error) {
	cancelCommand := CancelBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cancelCommand.setBookingID(bookingID); err != nil {
		return CancelBookingCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelBookingCommand) Validate() error {
	return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
}

// BookingID returns the booking to cancel.
func (c CancelBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c *CancelBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}
