package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the cargo command. It takes no flags: configuration
// comes from the environment and an optional .env file, and the command runs
// the demonstration scenario, printing the reports to the command's output.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cargo",
		Short: "Cargo loading simulation for container ships and cargo planes",
		Long: `cargo loads a container ship and a cargo airplane with a fixed set of
containers and prints each vessel's load, draft, speed and cargo layout.

Vessel particulars, the removal policy, the airplane speed model and the
notice sink are read from the environment (see .env.example).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(c.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
			root := NewCompositionRoot(cfg, logger, c.OutOrStdout())
			return RunDemo(c.Context(), &root, c.OutOrStdout())
		},
	}
}
