package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/plane"
	"cargo/internal/pkg/guard"
)

var (
	ErrCreatePlaneCommandIsNotConstructed = errors.New(
		"CreatePlaneCommand must be created via NewCreatePlaneCommand constructor",
	)
)

// CreatePlaneCommand represents a request to register a new cargo plane.
//
// Example:
//
//	cmd, err := NewCreatePlaneCommand(kernel.NewUUID(), "Skylifter",
//	    plane.Particulars{MaxWeight: 10, MaxSpeed: 600},
//	    plane.InverseSquareRoot, cargo.RemoveByReference)
//	if err != nil {
//	    return fmt.Errorf("invalid plane data: %w", err)
//	}
type CreatePlaneCommand struct { //nolint:recvcheck //using for validation
	planeID     kernel.UUID
	name        string
	particulars plane.Particulars
	model       plane.DecayModel
	policy      cargo.RemovalPolicy

	guard guard.ConstructorGuard
}

// NewCreatePlaneCommand creates a command to register a plane.
// All invalid fields are reported together.
func NewCreatePlaneCommand(
	planeID kernel.UUID,
	name string,
	particulars plane.Particulars,
	model plane.DecayModel,
	policy cargo.RemovalPolicy,
) (CreatePlaneCommand, error) {
	command := CreatePlaneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPlaneID(planeID),
		command.setName(name),
		command.setParticulars(particulars),
		command.setModel(model),
		command.setPolicy(policy),
	); err != nil {
		return CreatePlaneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePlaneCommand) Validate() error {
	return c.guard.Validate(ErrCreatePlaneCommandIsNotConstructed)
}

func (c CreatePlaneCommand) PlaneID() kernel.UUID {
	return c.planeID
}

func (c CreatePlaneCommand) Name() string {
	return c.name
}

func (c CreatePlaneCommand) Particulars() plane.Particulars {
	return c.particulars
}

func (c CreatePlaneCommand) DecayModel() plane.DecayModel {
	return c.model
}

func (c CreatePlaneCommand) Policy() cargo.RemovalPolicy {
	return c.policy
}

func (c *CreatePlaneCommand) setPlaneID(planeID kernel.UUID) error {
	if err := planeID.Validate(); err != nil {
		return err
	}

	c.planeID = planeID
	return nil
}

func (c *CreatePlaneCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreatePlaneCommand) setParticulars(particulars plane.Particulars) error {
	if err := particulars.Validate(); err != nil {
		return err
	}

	c.particulars = particulars
	return nil
}

func (c *CreatePlaneCommand) setModel(model plane.DecayModel) error {
	if err := model.Validate(); err != nil {
		return err
	}

	c.model = model
	return nil
}

func (c *CreatePlaneCommand) setPolicy(policy cargo.RemovalPolicy) error {
	if err := policy.Validate(); err != nil {
		return err
	}

	c.policy = policy
	return nil
}
