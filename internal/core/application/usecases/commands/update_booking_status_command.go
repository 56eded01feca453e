package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrUpdateBookingStatusCommandIsNotConstructed = errors.New(
	"UpdateBookingStatusCommand must be created via NewUpdateBookingStatusCommand constructor",
)

// UpdateBookingStatusCommand represents a request to move a booking to a new
// lifecycle status. The transition is checked against the booking state
// machine; illegal edges are rejected.
type UpdateBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	status    booking.Status

	guard guard.ConstructorGuard
}

// NewUpdateBookingStatusCommand creates a command to transition a booking.
// The target status must be one of the valid lifecycle statuses.
func NewUpdateBookingStatusCommand(bookingID kernel.UUID, status booking.Status) (UpdateBookingStatusCommand, error) {
	statusCommand := UpdateBookingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setBookingID(bookingID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateBookingStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingStatusCommandIsNotConstructed)
}

// BookingID returns the booking to transition.
func (c UpdateBookingStatusCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// Status returns the target lifecycle status.
func (c UpdateBookingStatusCommand) Status() booking.Status {
	return c.status
}

func (c *UpdateBookingStatusCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *UpdateBookingStatusCommand) setStatus(status booking.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
