package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrUnloadCargoCommandIsNotConstructed = errors.New(
		"UnloadCargoCommand must be created via NewUnloadCargoCommand or NewUnloadLastCargoCommand constructor",
	)
)

// UnloadCargoCommand takes a unit off a vessel. Built with
// NewUnloadCargoCommand it names the unit to remove (by-reference vessels);
// built with NewUnloadLastCargoCommand it takes the most recently loaded
// unit (by-stack vessels).
type UnloadCargoCommand struct { //nolint:recvcheck //using for validation
	vesselID kernel.UUID
	unit     *cargo.Unit

	guard guard.ConstructorGuard
}

// NewUnloadCargoCommand creates a command removing the first unit equal to
// the given size and category.
func NewUnloadCargoCommand(vesselID kernel.UUID, size int, category string) (UnloadCargoCommand, error) {
	command := UnloadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setUnit(size, category),
	); err != nil {
		return UnloadCargoCommand{}, err
	}

	return command, nil
}

// NewUnloadLastCargoCommand creates a command removing the last loaded unit.
func NewUnloadLastCargoCommand(vesselID kernel.UUID) (UnloadCargoCommand, error) {
	command := UnloadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setVesselID(vesselID); err != nil {
		return UnloadCargoCommand{}, err
	}

	return command, nil
}

func (c UnloadCargoCommand) Validate() error {
	return c.guard.Validate(ErrUnloadCargoCommandIsNotConstructed)
}

func (c UnloadCargoCommand) VesselID() kernel.UUID {
	return c.vesselID
}

// Unit returns the unit to remove and false when the command targets the
// last loaded unit instead.
func (c UnloadCargoCommand) Unit() (cargo.Unit, bool) {
	if c.unit == nil {
		return cargo.Unit{}, false
	}
	return *c.unit, true
}

func (c *UnloadCargoCommand) setVesselID(vesselID kernel.UUID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *UnloadCargoCommand) setUnit(size int, category string) error {
	unit, err := cargo.NewUnit(size, category)
	if err != nil {
		return err
	}

	c.unit = &unit
	return nil
}
