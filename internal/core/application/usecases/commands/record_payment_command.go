package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/core/domain/model/payment"
	"servicebooking/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a manual entry of money received for a
// booking. The amount is never taken from the caller; it is copied from the
// booking when the record is stored.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	bookingID kernel.UUID
	method    payment.Method

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	bookingID kernel.UUID,
	method payment.Method,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setPaymentID(paymentID),
		paymentCommand.setBookingID(bookingID),
		paymentCommand.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the unique identifier for the payment record.
func (c RecordPaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// BookingID returns the paid booking's identifier.
func (c RecordPaymentCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// PaymentMethod returns the reported payment channel.
func (c RecordPaymentCommand) PaymentMethod() payment.Method {
	return c.method
}

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}

	c.bookingID = bookingID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
