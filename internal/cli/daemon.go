package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/loupe/internal/config"
	"github.com/bnema/loupe/internal/daemon"
	"github.com/bnema/loupe/internal/logging"
)

// newDaemonCmd creates the daemon command
func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the magnifier tracking daemon",
		Long: `Runs the tracking daemon in the foreground. It owns the polling loop
and the control socket the other commands talk to. Run one per session,
typically from the compositor's autostart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg := config.Get()

			log := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)

			if err := config.Watch(); err != nil {
				log.Warn().Err(err).Msg("config watching disabled")
			}

			d, err := daemon.New(cfg, log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return d.Run(ctx)
		},
	}
}
