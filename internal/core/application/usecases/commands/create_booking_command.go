package commands

import (
	"errors"
	"strings"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrLocationIsRequired    = errors.New("location is required")
	ErrScheduledAtIsRequired = errors.New("scheduledAt is required")
)

// CreateBookingCommand represents a request to create a new service booking.
// Encapsulates the requesting customer, the service item, the scheduled time
// and the service location.
//
// Example:
//
//	bookingID := kernel.NewUUID()
//	cmd, err := NewCreateBookingCommand(bookingID, customerID, serviceID, at, "12 Hill Road")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//
//	handler := NewCreateBookingCommandHandler(uowFactory, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create booking: %w", err)
//	}
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	customerID  kernel.UUID
	serviceID   kernel.UUID
	scheduledAt time.Time
	location    string

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a command to register a new booking.
// Validates that all IDs are valid, the scheduled time is set and the
// location is not empty. Past scheduled times are accepted.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	scheduledAt time.Time,
	location string,
) (CreateBookingCommand, error) {
	bookingCommand := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingCommand.setBookingID(bookingID),
		bookingCommand.setCustomerID(customerID),
		bookingCommand.setServiceID(serviceID),
		bookingCommand.setScheduledAt(scheduledAt),
		bookingCommand.setLocation(location),
	); err != nil {
		return CreateBookingCommand{}, err
	}

	return bookingCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateBookingCommandIsNotConstructed if validation fails.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the unique identifier for the booking.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateBookingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ServiceID returns the booked service item's identifier.
func (c CreateBookingCommand) ServiceID() kernel.UUID {
	return c.serviceID
}

// ScheduledAt returns the requested service time.
func (c CreateBookingCommand) ScheduledAt() time.Time {
	return c.scheduledAt
}

// Location returns the free-text service location.
func (c CreateBookingCommand) Location() string {
	return c.location
}

func (c *CreateBookingCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *CreateBookingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateBookingCommand) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}

	c.serviceID = serviceID
	return nil
}

func (c *CreateBookingCommand) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}

	c.scheduledAt = scheduledAt
	return nil
}

func (c *CreateBookingCommand) setLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return ErrLocationIsRequired
	}

	c.location = location
	return nil
}
