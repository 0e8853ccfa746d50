package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreateShipCommandIsNotConstructed = errors.New(
		"CreateShipCommand must be created via NewCreateShipCommand constructor",
	)
)

// CreateShipCommand represents a request to register a new container ship.
//
// Example:
//
//	cmd, err := NewCreateShipCommand(kernel.NewUUID(), "Northern Star",
//	    ship.Particulars{MaxCapacity: 20, MaxSpeed: 25, MinDraft: 5, MaxDraft: 15},
//	    cargo.RemoveByReference)
//	if err != nil {
//	    return fmt.Errorf("invalid ship data: %w", err)
//	}
//
//	handler := NewCreateShipCommandHandler(repo, notifier)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register ship: %w", err)
//	}
type CreateShipCommand struct { //nolint:recvcheck //using for validation
	shipID      kernel.UUID
	name        string
	particulars ship.Particulars
	policy      cargo.RemovalPolicy

	guard guard.ConstructorGuard
}

// NewCreateShipCommand creates a command to register a ship.
// Validates the ID, the name, the particulars and the removal policy.
func NewCreateShipCommand(
	shipID kernel.UUID,
	name string,
	particulars ship.Particulars,
	policy cargo.RemovalPolicy,
) (CreateShipCommand, error) {
	command := CreateShipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipID(shipID),
		command.setName(name),
		command.setParticulars(particulars),
		command.setPolicy(policy),
	); err != nil {
		return CreateShipCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipCommandIsNotConstructed)
}

func (c CreateShipCommand) ShipID() kernel.UUID {
	return c.shipID
}

func (c CreateShipCommand) Name() string {
	return c.name
}

func (c CreateShipCommand) Particulars() ship.Particulars {
	return c.particulars
}

func (c CreateShipCommand) Policy() cargo.RemovalPolicy {
	return c.policy
}

func (c *CreateShipCommand) setShipID(shipID kernel.UUID) error {
	if err := shipID.Validate(); err != nil {
		return err
	}

	c.shipID = shipID
	return nil
}

func (c *CreateShipCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateShipCommand) setParticulars(particulars ship.Particulars) error {
	if err := particulars.Validate(); err != nil {
		return err
	}

	c.particulars = particulars
	return nil
}

func (c *CreateShipCommand) setPolicy(policy cargo.RemovalPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	c.policy = policy
	return nil
}
