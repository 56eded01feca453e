// Package payment provides the payment-record aggregate. Payment recording is
// a trusted manual entry: no gateway integration exists, the amount is always
// copied from the booking, and records are created directly in Completed
// status. There is no reversal or refund flow.
package payment

import (
	"errors"
	"fmt"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

// Method is the payment channel reported by the manual entry.
type Method int

const (
	MethodUnknown Method = iota
	Cash
	UPI
	Card
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "UNKNOWN",
		Cash:          "CASH",
		UPI:           "UPI",
		Card:          "CARD",
	}
}

// MethodFromString parses the wire representation of a payment method.
func MethodFromString(s string) (Method, error) {
	for m, str := range getMethodStrings() {
		if m != MethodUnknown && str == s {
			return m, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m == MethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the wire name of the method. Implements fmt.Stringer.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "UNKNOWN"
}

// ErrPaymentIsNotConstructed is returned when using an improperly initialized Payment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Payment records money received for a booking.
type Payment struct {
	id        kernel.UUID
	bookingID kernel.UUID
	amount    float64
	method    Method
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewPayment records a payment for a booking. The amount must be the
// booking's snapshotted amount, resolved by the caller.
func NewPayment(id kernel.UUID, bookingID kernel.UUID, amount float64, method Method) (*Payment, error) {
	p := &Payment{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBookingID(bookingID),
		p.setAmount(amount),
		p.setMethod(method),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a payment record from persistent storage.
func RestorePayment(id kernel.UUID, bookingID kernel.UUID, amount float64, method Method, createdAt time.Time) (*Payment, error) {
	p, err := NewPayment(id, bookingID, amount, method)
	if err != nil {
		return nil, err
	}
	p.createdAt = createdAt
	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment record's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// BookingID returns the paid booking's identifier.
func (p *Payment) BookingID() kernel.UUID { return p.bookingID }

// Amount returns the paid amount (always the booking's snapshot).
func (p *Payment) Amount() float64 { return p.amount }

// PaymentMethod returns the reported payment channel.
func (p *Payment) PaymentMethod() Method { return p.method }

// CreatedAt returns the record's creation timestamp.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	p.bookingID = bookingID
	return nil
}

func (p *Payment) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is not greater than 0", amount))
	}
	p.amount = amount
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}
