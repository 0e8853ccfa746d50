package commands

import (
	"context"

	"cargo/internal/core/ports"
)

// LoadCargoCommandHandler places a unit on a registered vessel.
type LoadCargoCommandHandler struct {
	repo ports.VesselRepository
}

func NewLoadCargoCommandHandler(repo ports.VesselRepository) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{repo: repo}
}

// Handle reports whether the vessel accepted the unit. A unit that would
// exceed the vessel's limit is not an error: the vessel emits its overflow
// notice and Handle returns false.
func (h LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	vessel, err := h.repo.Get(ctx, cmd.VesselID())
	if err != nil {
		return false, err
	}

	return vessel.AddUnit(cmd.Unit()), nil
}
