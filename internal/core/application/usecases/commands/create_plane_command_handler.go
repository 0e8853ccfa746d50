package commands

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/plane"
	"cargo/internal/core/ports"
)

// CreatePlaneCommandHandler builds a plane from the command and registers it.
type CreatePlaneCommandHandler struct {
	repo     ports.VesselRepository
	notifier cargo.Notifier
}

func NewCreatePlaneCommandHandler(repo ports.VesselRepository, notifier cargo.Notifier) CreatePlaneCommandHandler {
	return CreatePlaneCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

func (h CreatePlaneCommandHandler) Handle(ctx context.Context, cmd CreatePlaneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := plane.NewPlane(
		cmd.PlaneID(),
		cmd.Name(),
		cmd.Particulars(),
		cmd.DecayModel(),
		cmd.Policy(),
		h.notifier,
	)
	if err != nil {
		return err
	}

	return h.repo.Add(ctx, p)
}
