package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrSuspendProviderCommandIsNotConstructed = errors.New(
	"SuspendProviderCommand must be created via NewSuspendProviderCommand constructor",
)

// SuspendProviderCommand represents an admin decision to temporarily bar an
// approved provider. A suspended provider is reinstated through approval.
type SuspendProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSuspendProviderCommand creates a command to suspend a provider.
func NewSuspendProviderCommand(providerID kernel.UUID) (SuspendProviderCommand, error) {
	suspendCommand := SuspendProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := suspendCommand.setProviderID(providerID); err != nil {
		return SuspendProviderCommand{}, err
	}

	return suspendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SuspendProviderCommand) Validate() error {
	return c.guard.Validate(ErrSuspendProviderCommandIsNotConstructed)
}

// ProviderID returns the provider being suspended.
func (c SuspendProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *SuspendProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
