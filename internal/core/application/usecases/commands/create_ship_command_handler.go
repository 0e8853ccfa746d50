package commands

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/ship"
	"cargo/internal/core/ports"
)

// CreateShipCommandHandler builds a ship from the command and registers it.
// The notifier is handed to the ship and receives its rejected operations.
type CreateShipCommandHandler struct {
	repo     ports.VesselRepository
	notifier cargo.Notifier
}

func NewCreateShipCommandHandler(repo ports.VesselRepository, notifier cargo.Notifier) CreateShipCommandHandler {
	return CreateShipCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle creates an empty ship and adds it to the repository.
func (h CreateShipCommandHandler) Handle(ctx context.Context, cmd CreateShipCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := ship.NewShip(cmd.ShipID(), cmd.Name(), cmd.Particulars(), cmd.Policy(), h.notifier)
	if err != nil {
		return err
	}

	return h.repo.Add(ctx, s)
}
