package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrUpdateProviderAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateProviderAvailabilityCommand must be created via NewUpdateProviderAvailabilityCommand constructor",
)

// UpdateProviderAvailabilityCommand represents a provider's self-service
// toggle between Online and Offline.
type UpdateProviderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID
	online     bool

	guard guard.ConstructorGuard
}

// NewUpdateProviderAvailabilityCommand creates a command to change a
// provider's availability.
func NewUpdateProviderAvailabilityCommand(providerID kernel.UUID, online bool) (UpdateProviderAvailabilityCommand, error) {
	availabilityCommand := UpdateProviderAvailabilityCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := availabilityCommand.setProviderID(providerID); err != nil {
		return UpdateProviderAvailabilityCommand{}, err
	}

	return availabilityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProviderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProviderAvailabilityCommandIsNotConstructed)
}

// ProviderID returns the provider changing availability.
func (c UpdateProviderAvailabilityCommand) ProviderID() kernel.UUID {
	return c.providerID
}

// Online reports the requested availability.
func (c UpdateProviderAvailabilityCommand) Online() bool {
	return c.online
}

func (c *UpdateProviderAvailabilityCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
