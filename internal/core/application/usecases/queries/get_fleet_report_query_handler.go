package queries

import (
	"context"
	"strings"

	"cargo/internal/core/ports"
)

type GetFleetReportQueryHandler struct {
	repo ports.VesselRepository
}

func NewGetFleetReportQueryHandler(repo ports.VesselRepository) GetFleetReportQueryHandler {
	return GetFleetReportQueryHandler{repo: repo}
}

// Handle returns one report per vessel, in registration order.
func (h GetFleetReportQueryHandler) Handle(ctx context.Context, query GetFleetReportQuery) ([]VesselReport, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vessels, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]VesselReport, 0, len(vessels))
	for _, vessel := range vessels {
		reports = append(reports, toVesselReport(vessel))
	}

	return reports, nil
}

// JoinReports concatenates the rendered reports with a blank line between
// consecutive vessels.
func JoinReports(reports []VesselReport) string {
	texts := make([]string, 0, len(reports))
	for _, r := range reports {
		texts = append(texts, r.Report)
	}
	return strings.Join(texts, "\n")
}
