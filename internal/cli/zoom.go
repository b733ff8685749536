package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/loupe/internal/daemon"
)

// newZoomCmd creates the zoom command with its in/out subcommands.
func newZoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "zoom {in|out}",
		Short:     "Step the magnification factor up or down",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"in", "out"},
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "in":
				return runCommand(daemon.CmdZoomIn)
			case "out":
				return runCommand(daemon.CmdZoomOut)
			}
			return fmt.Errorf("unknown zoom direction %q", args[0])
		},
	}
	return cmd
}
