// Package queries contains read operations over the fleet.
// Queries never change vessel state; they return read models built from it.
package queries

import (
	"errors"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/guard"
)

var (
	ErrGetVesselReportQueryIsNotConstructed = errors.New(
		"GetVesselReportQuery must be created via NewGetVesselReportQuery constructor",
	)
)

// GetVesselReportQuery retrieves the status report of one vessel.
//
// Example:
//
//	query, err := NewGetVesselReportQuery(shipID)
//	if err != nil {
//	    return err
//	}
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build report: %w", err)
//	}
//	fmt.Print(report.Report)
type GetVesselReportQuery struct {
	vesselID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVesselReportQuery(vesselID kernel.UUID) (GetVesselReportQuery, error) {
	if err := vesselID.Validate(); err != nil {
		return GetVesselReportQuery{}, err
	}

	return GetVesselReportQuery{
		vesselID: vesselID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVesselReportQuery) Validate() error {
	return q.guard.Validate(ErrGetVesselReportQueryIsNotConstructed)
}

func (q GetVesselReportQuery) VesselID() kernel.UUID {
	return q.vesselID
}

// VesselReport is the read model of a vessel: identity, current load and the
// rendered multi-line report.
type VesselReport struct {
	ID        kernel.UUID
	Name      string
	TotalLoad int
	Report    string
}
