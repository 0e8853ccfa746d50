package commands

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/ports"
)

// UnloadCargoCommandHandler removes a unit from a registered vessel.
type UnloadCargoCommandHandler struct {
	repo ports.VesselRepository
}

func NewUnloadCargoCommandHandler(repo ports.VesselRepository) UnloadCargoCommandHandler {
	return UnloadCargoCommandHandler{repo: repo}
}

// Handle returns the removed unit and true on success. A missing unit, an
// empty hold or a call that does not match the vessel's removal policy
// yields false; the vessel notifies the reason.
func (h UnloadCargoCommandHandler) Handle(ctx context.Context, cmd UnloadCargoCommand) (cargo.Unit, bool, error) {
	if err := cmd.Validate(); err != nil {
		return cargo.Unit{}, false, err
	}

	vessel, err := h.repo.Get(ctx, cmd.VesselID())
	if err != nil {
		return cargo.Unit{}, false, err
	}

	if unit, ok := cmd.Unit(); ok {
		return unit, vessel.RemoveUnit(unit), nil
	}

	unit, ok := vessel.PopUnit()
	return unit, ok, nil
}
