package commands

import (
	"errors"

	"servicebooking/internal/core/domain/model/kernel"
	"servicebooking/internal/pkg/guard"
)

var ErrRejectProviderCommandIsNotConstructed = errors.New(
	"RejectProviderCommand must be created via NewRejectProviderCommand constructor",
)

// RejectProviderCommand represents an admin decision to reject a provider
// application.
type RejectProviderCommand struct { //nolint:recvcheck //using for validation
	providerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRejectProviderCommand creates a command to reject a provider.
func NewRejectProviderCommand(providerID kernel.UUID) (RejectProviderCommand, error) {
	rejectCommand := RejectProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := rejectCommand.setProviderID(providerID); err != nil {
		return RejectProviderCommand{}, err
	}

	return rejectCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectProviderCommand) Validate() error {
	return c.guard.Validate(ErrRejectProviderCommandIsNotConstructed)
}

// ProviderID returns the provider being rejected.
func (c RejectProviderCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c *RejectProviderCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}

	c.providerID = providerID
	return nil
}
