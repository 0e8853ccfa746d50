package cmd

import (
	"io"
	"log/slog"

	"cargo/internal/adapters/out/memory"
	"cargo/internal/adapters/out/notice"
	"cargo/internal/core/application/usecases/commands"
	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/cargo"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	repo     *memory.VesselRepository
	notifier cargo.Notifier
}

// NewCompositionRoot wires the fleet repository and the notice sink. Notices
// go to out when the sink is stdout and to logger otherwise.
func NewCompositionRoot(config Config, logger *slog.Logger, out io.Writer) CompositionRoot {
	var notifier cargo.Notifier
	switch config.NoticeSink {
	case NoticeSinkLog:
		notifier = notice.NewSlogNotifier(logger)
	default:
		notifier = notice.NewWriterNotifier(out)
	}

	return CompositionRoot{
		config:   config,
		logger:   logger,
		repo:     memory.NewVesselRepository(),
		notifier: notifier,
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger(component string) *slog.Logger {
	return c.logger.With("component", component)
}

func (c *CompositionRoot) CreateCreateShipCommandHandler() commands.CreateShipCommandHandler {
	return commands.NewCreateShipCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateCreatePlaneCommandHandler() commands.CreatePlaneCommandHandler {
	return commands.NewCreatePlaneCommandHandler(c.repo, c.notifier)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	return commands.NewLoadCargoCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateUnloadCargoCommandHandler() commands.UnloadCargoCommandHandler {
	return commands.NewUnloadCargoCommandHandler(c.repo)
}

func (c *CompositionRoot) CreateGetVesselReportQueryHandler() queries.GetVesselReportQueryHandler {
	return queries.NewGetVesselReportQueryHandler(c.repo)
}

func (c *CompositionRoot) CreateGetFleetReportQueryHandler() queries.GetFleetReportQueryHandler {
	return queries.NewGetFleetReportQueryHandler(c.repo)
}
