package services

import (
	"errors"

	"servicebooking/internal/core/domain/model/booking"
	"servicebooking/internal/core/domain/model/provider"
)

// ErrProviderNotFound is returned when no suitable provider is available for
// a booking. This occurs when no candidates are supplied or none of them is
// available to take jobs.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderMatcher is a domain service that selects the best available
// provider for a booking and performs the assignment.
//
// Selection rules:
//   - Only available providers are considered: Approved or Online, never
//     Offline or Suspended
//   - The highest-rated provider wins
//   - Ties break toward the provider with fewer completed jobs, spreading
//     work across providers of equal standing
//
// Example usage:
//
//	matcher := NewProviderMatcher()
//	assigned, err := matcher.Match(pendingBooking, candidates)
//	if errors.Is(err, ErrProviderNotFound) {
//	    // nobody available right now
//	    return
//	}
type ProviderMatcher struct{}

// NewProviderMatcher creates a new ProviderMatcher instance.
func NewProviderMatcher() ProviderMatcher {
	return ProviderMatcher{}
}

// Match picks the best approved candidate and assigns it to the booking.
// Returns the assigned provider, or ErrProviderNotFound if no candidate
// qualifies. The booking is only mutated on success.
func (m ProviderMatcher) Match(
	aggregate *booking.Booking,
	candidates []*provider.Provider,
) (*provider.Provider, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	var best *provider.Provider

	for _, candidate := range candidates {
		if !candidate.Status().IsAvailable() {
			continue
		}

		if best == nil || m.outranks(candidate, best) {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrProviderNotFound
	}

	if err := aggregate.AssignProvider(best.ID(), best.Name()); err != nil {
		return nil, err
	}

	return best, nil
}

func (m ProviderMatcher) outranks(candidate, incumbent *provider.Provider) bool {
	if candidate.Rating() != incumbent.Rating() {
		return candidate.Rating() > incumbent.Rating()
	}
	return candidate.CompletedJobs() < incumbent.CompletedJobs()
}
