// Package memory provides in-process implementations of the repository ports.
package memory

import (
	"context"
	"fmt"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// VesselRepository implements ports.VesselRepository over a map plus an
// ordered ID list. It is not safe for concurrent use.
type VesselRepository struct {
	vessels map[kernel.UUID]ports.Vessel
	order   []kernel.UUID
}

var _ ports.VesselRepository = (*VesselRepository)(nil)

// NewVesselRepository creates an empty repository.
func NewVesselRepository() *VesselRepository {
	return &VesselRepository{
		vessels: make(map[kernel.UUID]ports.Vessel),
	}
}

// Add registers the vessel. A vessel whose ID is already present is rejected.
func (r *VesselRepository) Add(_ context.Context, vessel ports.Vessel) error {
	if vessel == nil {
		return errs.NewValueIsRequiredError("vessel")
	}
	if err := vessel.Validate(); err != nil {
		return err
	}

	id := vessel.ID()
	if _, exists := r.vessels[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"vessel",
			fmt.Errorf("vessel %s is already registered", id),
		)
	}

	r.vessels[id] = vessel
	r.order = append(r.order, id)
	return nil
}

// Get returns the registered vessel with the given ID.
func (r *VesselRepository) Get(_ context.Context, id kernel.UUID) (ports.Vessel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	vessel, ok := r.vessels[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("vesselID", id.String())
	}

	return vessel, nil
}

// GetAll returns the vessels in registration order.
func (r *VesselRepository) GetAll(_ context.Context) ([]ports.Vessel, error) {
	vessels := make([]ports.Vessel, 0, len(r.order))
	for _, id := range r.order {
		vessels = append(vessels, r.vessels[id])
	}
	return vessels, nil
}
