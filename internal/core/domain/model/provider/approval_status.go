package provider

import (
	"fmt"

	"servicebooking/internal/pkg/errs"
)

// ApprovalStatus represents the admin-facing lifecycle state of a provider
// profile, from application through approval to availability toggling.
//
// State transitions:
//
//	PendingApproval ──┬──> Approved ──┬──> Online <──> Offline
//	                  │        ▲      │
//	                  │        │      └──> Suspended
//	                  │     Suspended ─────────┘ (reinstatement)
//	                  └──> Rejected (terminal)
type ApprovalStatus int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown ApprovalStatus = iota

	// PendingApproval is the initial status after a provider applies.
	PendingApproval

	// Approved means an admin accepted the provider's application.
	Approved

	// Rejected means an admin declined the application. Terminal.
	Rejected

	// Suspended means an approved provider was temporarily barred.
	Suspended

	// Online and Offline are availability toggles for approved providers.
	Online
	Offline
)

func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		StatusUnknown:   "UNKNOWN",
		PendingApproval: "PENDING_APPROVAL",
		Approved:        "APPROVED",
		Rejected:        "REJECTED",
		Suspended:       "SUSPENDED",
		Online:          "ONLINE",
		Offline:         "OFFLINE",
	}
}

// ApprovalStatusFromString parses the wire representation of an approval status.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, str := range getApprovalStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid provider status", s),
	)
}

// Validate checks if the ApprovalStatus value is valid.
func (s ApprovalStatus) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getApprovalStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsApproved reports whether the provider has passed admin review. Online,
// Offline and Suspended providers remain approved.
func (s ApprovalStatus) IsApproved() bool {
	return s == Approved || s == Online || s == Offline || s == Suspended
}

// ApprovedStatuses returns every status an approved provider can be in.
// Persistence queries for approved providers match against this set.
func ApprovedStatuses() []ApprovalStatus {
	return []ApprovalStatus{Approved, Online, Offline, Suspended}
}

// IsAvailable reports whether the provider can take new jobs right now.
// Approved providers that never toggled availability count as available;
// Offline and Suspended providers do not.
func (s ApprovalStatus) IsAvailable() bool {
	return s == Approved || s == Online
}

// Approve transitions the status to Approved.
// Only PendingApproval and Suspended providers can be (re-)approved.
func (s ApprovalStatus) Approve() (ApprovalStatus, error) {
	if s != PendingApproval && s != Suspended {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to approve", s.String()),
		)
	}
	return Approved, nil
}

// Reject transitions the status to Rejected. Only applications still pending
// review can be rejected; Rejected is terminal.
func (s ApprovalStatus) Reject() (ApprovalStatus, error) {
	if s != PendingApproval {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reject", s.String()),
		)
	}
	return Rejected, nil
}

// SetAvailability toggles an approved provider between Online and Offline.
func (s ApprovalStatus) SetAvailability(online bool) (ApprovalStatus, error) {
	if s != Approved && s != Online && s != Offline {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to change availability", s.String()),
		)
	}
	if online {
		return Online, nil
	}
	return Offline, nil
}

// Suspend transitions an approved provider to Suspended.
func (s ApprovalStatus) Suspend() (ApprovalStatus, error) {
	if !s.IsApproved() || s == Suspended {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to suspend", s.String()),
		)
	}
	return Suspended, nil
}
