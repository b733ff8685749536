package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/loupe/internal/daemon"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current tracking state",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCommand(daemon.CmdStatus)
		},
	}
}
