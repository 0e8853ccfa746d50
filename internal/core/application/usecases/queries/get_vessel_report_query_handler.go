package queries

import (
	"context"

	"cargo/internal/core/ports"
)

type GetVesselReportQueryHandler struct {
	repo ports.VesselRepository
}

func NewGetVesselReportQueryHandler(repo ports.VesselRepository) GetVesselReportQueryHandler {
	return GetVesselReportQueryHandler{repo: repo}
}

// Handle returns the report of the requested vessel.
func (h GetVesselReportQueryHandler) Handle(ctx context.Context, query GetVesselReportQuery) (VesselReport, error) {
	if err := query.Validate(); err != nil {
		return VesselReport{}, err
	}

	vessel, err := h.repo.Get(ctx, query.VesselID())
	if err != nil {
		return VesselReport{}, err
	}

	return toVesselReport(vessel), nil
}

func toVesselReport(vessel ports.Vessel) VesselReport {
	return VesselReport{
		ID:        vessel.ID(),
		Name:      vessel.Name(),
		TotalLoad: vessel.TotalLoad(),
		Report:    vessel.Report(),
	}
}
