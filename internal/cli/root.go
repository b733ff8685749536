// Package cli provides the command-line interface for loupe.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo carries build-time metadata injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// NewRootCmd creates the root command for loupe.
func NewRootCmd(info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loupe",
		Short: "A screen-magnifier tracking daemon for wlroots compositors",
		Long: `loupe drives a fullscreen magnification viewport that follows the
screen reader caret and the pointer. Run "loupe daemon" once per session,
then bind the toggle, zoom and mode commands to compositor keybindings.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s, %s)", info.Version, info.Commit, info.BuildDate, info.GoVersion),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newDaemonCmd(),
		newToggleCmd(),
		newZoomCmd(),
		newModeCmd(),
		newStatusCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// Execute runs the CLI.
func Execute(info BuildInfo) {
	if err := NewRootCmd(info).Execute(); err != nil {
		os.Exit(1)
	}
}
