package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/loupe/internal/daemon"
)

// newToggleCmd creates the toggle command
func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Toggle magnifier tracking on or off",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCommand(daemon.CmdToggle)
		},
	}
}
