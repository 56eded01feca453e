package provider

import (
	"errors"
	"fmt"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/errs"
	"servicebooking/internal/pkg/guard"
)

// Domain errors for provider operations.
var (
	// ErrProviderIsNotConstructed is returned when using an improperly initialized Provider.
	ErrProviderIsNotConstructed = errors.New("Provider must be created via NewProvider constructor")
	// ErrNameIsRequired is returned when attempting to create a provider without a display name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Provider represents a service-provider profile. It is an aggregate root that
// owns the provider's approval lifecycle and the cumulative statistics fed by
// completed bookings.
//
// Business rules:
//   - totalEarnings is monotonically non-decreasing and only grows through
//     RecordCompletedJob
//   - completedJobs increments in lockstep with earnings, exactly once per
//     booking that transitions into Completed
//   - rating is derived from the ratings store and only set through
//     ApplyAverageRating, never directly by a user
type Provider struct {
	// id uniquely identifies the provider profile
	id kernel.UUID
	// userID references the owning user account (1:1)
	userID kernel.UUID
	// name is the provider's display name, snapshotted onto bookings at assignment
	name string
	// selectedServices is the free-text list of services the provider offers
	selectedServices string
	// status is the admin-facing approval lifecycle state
	status ApprovalStatus
	// totalEarnings accumulates booking amounts from completed jobs
	totalEarnings float64
	// completedJobs counts bookings this provider completed
	completedJobs int
	// rating is the arithmetic mean of all stars across this provider's ratings,
	// 0.0 when the provider has none
	rating float64
	// guard ensures the provider was properly constructed
	guard guard.ConstructorGuard
}

// NewProvider creates a new Provider in PendingApproval status with zeroed
// statistics. This is the only way to create a fresh provider profile.
func NewProvider(id kernel.UUID, userID kernel.UUID, name string, selectedServices string) (*Provider, error) {
	p := &Provider{
		selectedServices: selectedServices,
		status:           PendingApproval,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProvider reconstructs a Provider aggregate from persistent storage,
// including its approval status and cumulative statistics.
func RestoreProvider(
	id kernel.UUID,
	userID kernel.UUID,
	name string,
	selectedServices string,
	status ApprovalStatus,
	totalEarnings float64,
	completedJobs int,
	rating float64,
) (*Provider, error) {
	p := &Provider{
		selectedServices: selectedServices,
		status:           status,
		totalEarnings:    totalEarnings,
		completedJobs:    completedJobs,
		rating:           rating,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setName(name),
		status.Validate(),
		validateStats(totalEarnings, completedJobs, rating),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func validateStats(totalEarnings float64, completedJobs int, rating float64) error {
	if totalEarnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total earnings is invalid",
			fmt.Errorf("%v is negative", totalEarnings))
	}
	if completedJobs < 0 {
		return errs.NewValueIsInvalidErrorWithCause("completed jobs is invalid",
			fmt.Errorf("%d is negative", completedJobs))
	}
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	return nil
}

// Validate ensures the Provider instance was properly constructed.
func (p *Provider) Validate() error {
	if p == nil {
		return ErrProviderIsNotConstructed
	}
	return p.guard.Validate(ErrProviderIsNotConstructed)
}

// IsEqual compares two providers by their unique identifiers.
func (p *Provider) IsEqual(other *Provider) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the provider profile's unique identifier.
func (p *Provider) ID() kernel.UUID {
	return p.id
}

// UserID returns the owning user account's identifier.
func (p *Provider) UserID() kernel.UUID {
	return p.userID
}

// Name returns the provider's display name.
func (p *Provider) Name() string {
	return p.name
}

// SelectedServices returns the free-text list of offered services.
func (p *Provider) SelectedServices() string {
	return p.selectedServices
}

// Status returns the current approval status.
func (p *Provider) Status() ApprovalStatus {
	return p.status
}

// TotalEarnings returns the cumulative earnings from completed bookings.
func (p *Provider) TotalEarnings() float64 {
	return p.totalEarnings
}

// CompletedJobs returns the number of bookings this provider completed.
func (p *Provider) CompletedJobs() int {
	return p.completedJobs
}

// Rating returns the current average rating (0.0 when unrated).
func (p *Provider) Rating() float64 {
	return p.rating
}

// Approve moves the provider to Approved. Only pending or suspended
// providers can be approved.
func (p *Provider) Approve() error {
	newStatus, err := p.status.Approve()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Reject declines a pending provider application. Rejected is terminal.
func (p *Provider) Reject() error {
	newStatus, err := p.status.Reject()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// SetAvailability toggles an approved provider between Online and Offline.
func (p *Provider) SetAvailability(online bool) error {
	newStatus, err := p.status.SetAvailability(online)
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// Suspend temporarily bars an approved provider.
func (p *Provider) Suspend() error {
	newStatus, err := p.status.Suspend()
	if err != nil {
		return err
	}
	p.status = newStatus
	return nil
}

// RecordCompletedJob applies the completion bonus for one finished booking:
// completedJobs grows by exactly 1 and totalEarnings by exactly the booking's
// amount. Callers must invoke this at most once per booking; the booking FSM
// guarantees the triggering transition fires only once.
func (p *Provider) RecordCompletedJob(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid",
			fmt.Errorf("%v is not greater than 0", amount))
	}

	p.completedJobs++
	p.totalEarnings += amount
	return nil
}

// ApplyAverageRating stores the freshly recomputed average rating.
// The value is the store-computed arithmetic mean of all stars for this
// provider; 0.0 means the provider has no ratings.
func (p *Provider) ApplyAverageRating(avg float64) error {
	if avg < 0 || avg > 5 {
		return errs.NewValueIsOutOfRangeError("rating", avg, 0, 5)
	}

	p.rating = avg
	return nil
}

// setID validates and sets the provider's unique identifier.
func (p *Provider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setUserID validates and sets the owning user reference.
func (p *Provider) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	p.userID = userID
	return nil
}

// setName validates and sets the display name.
func (p *Provider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
