package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the anglecut CLI and returns an error if any command fails.
//
// The root command wires up the subcommands (plan, batch, compare) and
// configures logging based on the --verbose flag. The logger is attached
// to the context and accessible to all commands via loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "anglecut",
		Short:        "AngleCut plans how support-angle runs are cut and bracketed",
		Long:         `AngleCut takes a run length and a bracket spacing and works out the cutting plan: which stock lengths to cut, where every bracket sits on each piece, and which plan needs the least hardware.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("anglecut %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlanCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newProfileCmd())

	return root.ExecuteContext(context.Background())
}
