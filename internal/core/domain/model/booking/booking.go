package booking

import (
	"errors"
	"fmt"
	"time"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

// Domain errors for booking operations.
var (
	// ErrBookingIsNotConstructed is returned when a Booking instance was not created
	// through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
	// ErrLocationIsRequired is returned when attempting to create a booking without a service location.
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	// ErrCustomerNameIsRequired is returned when the customer display-name snapshot is missing.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customer name")
	// ErrScheduledAtIsRequired is returned when the booking date/time is the zero value.
	ErrScheduledAtIsRequired = errs.NewValueIsRequiredError("scheduled at")
)

// Booking represents a scheduled engagement between a customer and (optionally,
// later) a provider for a priced service. It is the aggregate root governing
// the booking lifecycle from creation through provider assignment to a
// terminal Completed or Cancelled state.
//
// Booking follows these invariants:
//   - Amount is snapshotted from the service's base price at creation time and
//     never changes afterwards, regardless of later catalog edits
//   - The provider reference is nil exactly while the booking is Pending
//   - Customer and provider display names are snapshots taken at creation and
//     assignment time; they are deliberately not kept in sync with later
//     profile renames
//   - Status transitions follow the FSM defined on Status
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Booking struct {
	// id is the unique identifier for the booking
	id kernel.UUID

	// customerID references the customer profile that placed the booking
	customerID kernel.UUID

	// providerID is the assigned provider's ID (nil while Pending)
	providerID *kernel.UUID

	// serviceID references the catalog item being booked
	serviceID kernel.UUID

	// scheduledAt is the requested service date/time. Any value is accepted,
	// including the past: conflict and future-date checks are an explicit
	// non-goal of this system.
	scheduledAt time.Time

	// location is the free-text service address
	location string

	// status is the current state in the booking lifecycle
	status Status

	// amount is the price snapshot taken from the service at creation
	amount float64

	// customerName and providerName are display-name snapshots
	customerName string
	providerName string

	// createdAt is server-assigned once at creation
	createdAt time.Time

	// guard ensures the booking was properly constructed
	guard guard.ConstructorGuard
}

// NewBooking creates a new Booking in Pending status. This is the only way to
// create a fresh booking, ensuring all business invariants hold from the start.
//
// The amount must already be the snapshot of the service's current base price;
// taking that snapshot is the caller's job because the catalog lives in a
// different aggregate.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerID: the booking customer's profile ID
//   - serviceID: the catalog item being booked
//   - scheduledAt: requested service date/time (must be non-zero)
//   - location: free-text service address (must be non-empty)
//   - amount: price snapshot (must be positive)
//   - customerName: customer display-name snapshot (must be non-empty)
//
// Returns the created booking, or a joined validation error if any parameter
// is invalid.
func NewBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	serviceID kernel.UUID,
	scheduledAt time.Time,
	location string,
	amount float64,
	customerName string,
) (*Booking, error) {
	b := &Booking{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setServiceID(serviceID),
		b.setScheduledAt(scheduledAt),
		b.setLocation(location),
		b.setAmount(amount),
		b.setCustomerName(customerName),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking reconstructs a Booking aggregate from persistent storage.
// Unlike NewBooking it accepts any valid status and an optional provider,
// and validates that the status/provider combination is consistent.
func RestoreBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	providerID *kernel.UUID,
	serviceID kernel.UUID,
	scheduledAt time.Time,
	location string,
	status Status,
	amount float64,
	customerName string,
	providerName string,
	createdAt time.Time,
) (*Booking, error) {
	b := &Booking{
		providerID:   providerID,
		status:       status,
		providerName: providerName,
		createdAt:    createdAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setServiceID(serviceID),
		b.setScheduledAt(scheduledAt),
		b.setLocation(location),
		b.setAmount(amount),
		b.setCustomerName(customerName),
		status.Validate(),
		status.ValidateCanHaveProvider(providerID != nil),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the Booking instance was properly constructed.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the ID of the customer profile that placed the booking.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// ProviderID returns the assigned provider's ID, or nil while Pending.
func (b *Booking) ProviderID() *kernel.UUID {
	return b.providerID
}

// ServiceID returns the booked catalog item's ID.
func (b *Booking) ServiceID() kernel.UUID {
	return b.serviceID
}

// ScheduledAt returns the requested service date/time.
func (b *Booking) ScheduledAt() time.Time {
	return b.scheduledAt
}

// Location returns the free-text service address.
func (b *Booking) Location() string {
	return b.location
}

// Status returns the current lifecycle status.
func (b *Booking) Status() Status {
	return b.status
}

// Amount returns the price snapshot taken at creation.
func (b *Booking) Amount() float64 {
	return b.amount
}

// CustomerName returns the customer display-name snapshot.
func (b *Booking) CustomerName() string {
	return b.customerName
}

// ProviderName returns the provider display-name snapshot ("" until assigned).
func (b *Booking) ProviderName() string {
	return b.providerName
}

// CreatedAt returns the server-assigned creation timestamp.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// AssignProvider assigns the booking to a provider and moves it to Accepted.
//
// Assignment is an unconditional overwrite while the booking is Pending or
// Accepted: reassigning replaces the previous provider reference and name
// snapshot without restoring the previous provider's state. Terminal bookings
// reject assignment.
func (b *Booking) AssignProvider(providerID kernel.UUID, providerName string) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	if providerName == "" {
		return errs.NewValueIsRequiredError("provider name")
	}

	newStatus, err := b.status.Assign()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.providerID = &providerID
	b.providerName = providerName
	return nil
}

// Complete marks the booking as completed.
//
// The booking must be Accepted (and therefore have a provider). Completed is
// terminal, so this can succeed at most once per booking; the caller keys the
// provider completion bonus on this transition.
func (b *Booking) Complete() error {
	newStatus, err := b.status.Complete()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Cancel marks the booking as cancelled. No refund or compensation flow exists.
func (b *Booking) Cancel() error {
	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// TransitionTo moves the booking to the target status via the matching FSM
// edge. It returns true when this call transitioned the booking into
// Completed, which is the signal that the provider completion bonus must be
// applied. Because Completed -> Completed is an illegal edge, the bonus signal
// fires at most once per booking.
//
// Transitioning to Accepted through this method is rejected when the booking
// has no provider: assignment must go through AssignProvider so the provider
// reference and name snapshot stay consistent.
func (b *Booking) TransitionTo(target Status) (bool, error) {
	if target == Accepted && b.providerID == nil {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot accept a booking without a provider"),
		)
	}

	newStatus, err := b.status.TransitionTo(target)
	if err != nil {
		return false, err
	}

	b.status = newStatus
	return newStatus == Completed, nil
}

// setID validates and sets the booking's unique identifier.
func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
func (b *Booking) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

// setServiceID validates and sets the catalog item reference.
func (b *Booking) setServiceID(serviceID kernel.UUID) error {
	if err := serviceID.Validate(); err != nil {
		return err
	}
	b.serviceID = serviceID
	return nil
}

// setScheduledAt validates and sets the requested service date/time.
func (b *Booking) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return ErrScheduledAtIsRequired
	}
	b.scheduledAt = scheduledAt
	return nil
}

// setLocation validates and sets the free-text service address.
func (b *Booking) setLocation(location string) error {
	if location == "" {
		return ErrLocationIsRequired
	}
	b.location = location
	return nil
}

// setAmount validates and sets the price snapshot. Amount must be positive.
func (b *Booking) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%v is not greater than 0", amount))
	}
	b.amount = amount
	return nil
}

// setCustomerName validates and sets the customer display-name snapshot.
func (b *Booking) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	b.customerName = customerName
	return nil
}
