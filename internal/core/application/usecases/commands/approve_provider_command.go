package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrApproveProviderCommandIsNotConstructed = errors.New(
	"ApproveProviderCommand must be created via NewApproveProviderCommand constructor",
)

// ApproveProviderCommand represents an admin decision to approve a provider
// application.
type ApproveProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveProviderCommand creates a command to approve a provider.
func NewApproveProviderCommand(providerID kernel.UUID) (ApproveProviderCommand, error) {
	approveCommand := ApproveProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := approveCommand.setProviderID(providerID); err != nil {
		return ApproveProviderCommand{}, err
	}

	return approveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveProviderCommand) Validate() error {
	return c.guard.Validate(ErrApproveProviderCommandIsNotConstructed)
}

// ProviderID returns the provider being approved.
func (c ApproveProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *ApproveProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
