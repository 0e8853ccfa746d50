package cmd

import (
	"context"
	"fmt"
	"io"

	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/kernel"
)

const (
	shipHeader  = "CONTAINER SHIP SIMULATION"
	planeHeader = "AIRPLANE CARGO SIMULATION"
)

type demoLoad struct {
	size       int
	categories []string
}

var (
	shipDemoLoad  = demoLoad{size: 1, categories: []string{"FF", "CG", "PG", "RM", "IE", "FF", "CG", "PG"}}
	planeDemoLoad = demoLoad{size: 2, categories: []string{"FF", "CG", "PG", "IE", "FF"}}
)

// RunDemo registers one ship and one plane with the configured particulars.
// Then, one vessel at a time, it writes the section header, loads the
// demonstration cargo and writes the vessel's report to w. Notices raised
// while loading therefore land under the header of their vessel.
func RunDemo(ctx context.Context, root *CompositionRoot, w io.Writer) error {
	logger := root.Logger("demo")
	cfg := root.Config()

	shipID := kernel.NewUUID()
	createShip, err := commands.NewCreateShipCommand(shipID, "Container Ship", cfg.ShipParticulars(), cfg.RemovalPolicy)
	if err != nil {
		return fmt.Errorf("create ship command: %w", err)
	}
	shipHandler := root.CreateCreateShipCommandHandler()
	if err = shipHandler.Handle(ctx, createShip); err != nil {
		return fmt.Errorf("register ship: %w", err)
	}

	planeID := kernel.NewUUID()
	createPlane, err := commands.NewCreatePlaneCommand(
		planeID, "Cargo Airplane", cfg.PlaneParticulars(), cfg.AirSpeedModel, cfg.RemovalPolicy,
	)
	if err != nil {
		return fmt.Errorf("create plane command: %w", err)
	}
	planeHandler := root.CreateCreatePlaneCommandHandler()
	if err = planeHandler.Handle(ctx, createPlane); err != nil {
		return fmt.Errorf("register plane: %w", err)
	}

	reportHandler := root.CreateGetVesselReportQueryHandler()
	sections := []struct {
		header string
		id     kernel.UUID
		load   demoLoad
	}{
		{shipHeader, shipID, shipDemoLoad},
		{planeHeader, planeID, planeDemoLoad},
	}
	for i, section := range sections {
		if i > 0 {
			if _, err = fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w, section.header); err != nil {
			return err
		}

		if err = loadAll(ctx, root, section.id, section.load); err != nil {
			return err
		}
		logger.DebugContext(ctx, "demo cargo loaded", "vessel", section.id.String())

		var report string
		if report, err = vesselReport(ctx, reportHandler, section.id); err != nil {
			return err
		}
		if _, err = io.WriteString(w, report); err != nil {
			return err
		}
	}

	return logFleet(ctx, root)
}

func vesselReport(ctx context.Context, handler queries.GetVesselReportQueryHandler, id kernel.UUID) (string, error) {
	query, err := queries.NewGetVesselReportQuery(id)
	if err != nil {
		return "", err
	}

	report, err := handler.Handle(ctx, query)
	if err != nil {
		return "", fmt.Errorf("report %s: %w", id, err)
	}
	return report.Report, nil
}

func logFleet(ctx context.Context, root *CompositionRoot) error {
	logger := root.Logger("fleet")
	handler := root.CreateGetFleetReportQueryHandler()

	reports, err := handler.Handle(ctx, queries.NewGetFleetReportQuery())
	if err != nil {
		return fmt.Errorf("fleet report: %w", err)
	}

	for _, r := range reports {
		logger.InfoContext(ctx, "vessel loaded", "vessel", r.Name, "id", r.ID.String(), "load_teu", r.TotalLoad)
	}
	logger.DebugContext(ctx, "fleet report", "report", queries.JoinReports(reports))

	return nil
}

func loadAll(ctx context.Context, root *CompositionRoot, vesselID kernel.UUID, load demoLoad) error {
	handler := root.CreateLoadCargoCommandHandler()
	for _, category := range load.categories {
		cmd, err := commands.NewLoadCargoCommand(vesselID, load.size, category)
		if err != nil {
			return fmt.Errorf("load command: %w", err)
		}
		if _, err = handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("load %s: %w", category, err)
		}
	}
	return nil
}
