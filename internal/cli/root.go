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

// SetVersion sets the version information displayed by --version.
// Typically called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the flowcanvas CLI and returns an error if any command fails.
// The context bounds every command; cancelling it (SIGINT) unwinds long
// operations like serve.
//
// Logging defaults to info level on stderr; --verbose (-v) switches to debug.
// The logger is attached to the command context and retrieved by commands via
// loggerFromContext. The --config flag names the TOML configuration file;
// commands that need it load it through loadConfig.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "flowcanvas",
		Short:        "FlowCanvas edits and converts business-process diagrams",
		Long:         `FlowCanvas is a diagram engine for business-process notations: flow charts, value-stream maps and case timelines. It converts between notations, bridges to BPMN XML, renders SVG and serves the engine over HTTP.`,
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

	root.SetVersionTemplate(fmt.Sprintf("flowcanvas %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "flowcanvas.toml", "configuration file")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newImportCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newSnapshotCmd())

	return root.ExecuteContext(ctx)
}
