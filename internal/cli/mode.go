package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/loupe/internal/daemon"
)

// newModeCmd creates the mode command
func newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Toggle between center and border follow mode",
		Long: `In center mode the viewport re-centers on every pointer position.
In border mode the viewport only scrolls when the pointer nears its edge.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runCommand(daemon.CmdToggleMode)
		},
	}
}
