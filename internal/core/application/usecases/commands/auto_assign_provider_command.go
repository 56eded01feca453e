package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrAutoAssignProviderCommandIsNotConstructed = errors.New(
	"AutoAssignProviderCommand must be created via NewAutoAssignProviderCommand constructor",
)

// AutoAssignProviderCommand represents a request to let the system pick the
// best available provider for a booking instead of naming one explicitly.
type AutoAssignProviderCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAutoAssignProviderCommand creates a command to auto-assign a provider.
func NewAutoAssignProviderCommand(bookingID kernel.UUID) (AutoAssignProviderCommand, error) {
	autoAssignCommand := AutoAssignProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := autoAssignCommand.setBookingID(bookingID); err != nil {
		return AutoAssignProviderCommand{}, err
	}

	return autoAssignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignProviderCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignProviderCommandIsNotConstructed)
}

// BookingID returns the booking to assign.
func (c AutoAssignProviderCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c *AutoAssignProviderCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}
