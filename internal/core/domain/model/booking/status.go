package booking

import (
	"fmt"

	"servicebooking/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
// It implements a state machine with defined transitions so bookings
// follow the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──┬──> Completed
//	          │       │  │
//	          │       └──┘ (provider reassignment allowed)
//	          │       │
//	          └───────┴──> Cancelled
//
// Completed and Cancelled are terminal states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a booking is first created.
	// Bookings in this status are waiting for a provider assignment.
	Pending

	// Accepted indicates a provider has been assigned to the booking.
	// Providers can be reassigned while in this status.
	Accepted

	// Completed indicates the service was delivered. Entering this status
	// triggers the provider completion bonus exactly once. Terminal.
	Completed

	// Cancelled indicates the booking was called off before completion. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Accepted:  "ACCEPTED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire representation of a status.
// Returns an error for anything outside the four valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid booking status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Accepted, Completed, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("PENDING", "ACCEPTED", ...).
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions are allowed from this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssign checks if the status allows provider assignment without
// performing the transition.
//
// Valid statuses for assignment:
//   - Pending (initial assignment)
//   - Accepted (reassignment overwrites the previous provider)
//
// Terminal bookings cannot be assigned.
func (s Status) ValidateAssign() error {
	if s != Pending && s != Accepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a provider", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveProvider validates the consistency between booking status and
// provider assignment.
//
// Business rules:
//   - Pending bookings must not have a provider assigned
//   - Accepted, Completed and Cancelled-after-acceptance bookings may have one
func (s Status) ValidateCanHaveProvider(provider bool) error {
	if provider && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a provider", s.String()),
		)
	}

	if !provider && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no provider", s.String()),
		)
	}

	return nil
}

// Assign transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (initial assignment)
//   - Accepted -> Accepted (reassignment to a different provider)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return 0, err
	}

	return Accepted, nil
}

// Complete transitions the status to Completed.
//
// The only valid transition is Accepted -> Completed: a booking must have an
// assigned provider before the service can be delivered. Completed -> Completed
// is rejected, which keeps the completion bonus from being applied twice.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Accepted -> Cancelled
//
// Completed bookings cannot be cancelled, there is no compensation flow.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// TransitionTo moves the status to target via the matching FSM edge.
// It is the single entry point used when the target status arrives from the
// wire (the status-update endpoint); Pending is never a valid target because
// reopening a booking is not supported.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Accepted:
		return s.Assign()
	case Completed:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid target status", target.String()),
		)
	}
}
