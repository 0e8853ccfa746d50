package commands

import (
	"errors"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrLoadCargoCommandIsNotConstructed = errors.New(
		"LoadCargoCommand must be created via NewLoadCargoCommand constructor",
	)
)

// LoadCargoCommand asks a vessel to take one cargo unit aboard.
// The unit is built from its raw size and category tag, so an invalid unit
// is rejected here, before any vessel is looked up.
type LoadCargoCommand struct { //nolint:recvcheck //using for validation
	vesselID kernel.UUID
	unit     cargo.Unit

	guard guard.ConstructorGuard
}

func NewLoadCargoCommand(vesselID kernel.UUID, size int, category string) (LoadCargoCommand, error) {
	command := LoadCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVesselID(vesselID),
		command.setUnit(size, category),
	); err != nil {
		return LoadCargoCommand{}, err
	}

	return command, nil
}

func (c LoadCargoCommand) Validate() error {
	return c.guard.Validate(ErrLoadCargoCommandIsNotConstructed)
}

func (c LoadCargoCommand) VesselID() kernel.UUID {
	return c.vesselID
}

func (c LoadCargoCommand) Unit() cargo.Unit {
	return c.unit
}

func (c *LoadCargoCommand) setVesselID(vesselID kernel.UUID) error {
	if err := vesselID.Validate(); err != nil {
		return err
	}

	c.vesselID = vesselID
	return nil
}

func (c *LoadCargoCommand) setUnit(size int, category string) error {
	unit, err := cargo.NewUnit(size, category)
	if err != nil {
		return err
	}

	c.unit = unit
	return nil
}
