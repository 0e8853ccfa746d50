// Package ports defines the contracts between the application layer and the
// adapters that hold vessels.
package ports

import (
	"context"

	"cargo/internal/core/domain/model/cargo"
	"cargo/internal/core/domain/model/kernel"
)

// Vessel is the behavior shared by ships and planes that the application
// layer relies on. *ship.Ship and *plane.Plane both satisfy it.
type Vessel interface {
	ID() kernel.UUID
	Name() string
	Policy() cargo.RemovalPolicy
	Units() []cargo.Unit
	TotalLoad() int
	AddUnit(unit cargo.Unit) bool
	RemoveUnit(unit cargo.Unit) bool
	PopUnit() (cargo.Unit, bool)
	Report() string
	Validate() error
}

// VesselRepository keeps the fleet. Vessels are held by reference, so
// changes made through a fetched vessel are visible on the next Get.
type VesselRepository interface {
	// Add registers a new vessel. The vessel must be valid and its ID unused.
	Add(ctx context.Context, vessel Vessel) error

	// Get returns the vessel with the given ID, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (Vessel, error)

	// GetAll returns every vessel in registration order.
	GetAll(ctx context.Context) ([]Vessel, error)
}
