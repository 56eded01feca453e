package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrAssignProviderCommandIsNotConstructed = errors.New(
	"AssignProviderCommand must be created via NewAssignProviderCommand constructor",
)

// AssignProviderCommand represents a request to assign a provider to a booking.
// Assignment is an unconditional overwrite: an already accepted booking may be
// reassigned to a different provider.
type AssignProviderCommand struct { //nolint:recvcheck //using for validation
	bookingID  kernel.UUID
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignProviderCommand creates a command to assign a provider to a booking.
func NewAssignProviderCommand(bookingID kernel.UUID, providerID kernel.UUID) (AssignProviderCommand, error) {
	assignCommand := AssignProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setBookingID(bookingID),
		assignCommand.setProviderID(providerID),
	); err != nil {
		return AssignProviderCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignProviderCommand) Validate() error {
	return c.guard.Validate(ErrAssignProviderCommandIsNotConstructed)
}

// BookingID returns the booking to assign.
func (c AssignProviderCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// ProviderID returns the provider taking the job.
func (c AssignProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *AssignProviderCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *AssignProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
