package app

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// Execute runs the bookshelf CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}
	rootCmd.SetArgs(args)

	if a.stdin != nil {
		rootCmd.SetIn(a.stdin)
	}
	if a.stdout != nil {
		rootCmd.SetOut(a.stdout)
	}
	if a.stderr != nil {
		rootCmd.SetErr(a.stderr)
	}

	ctx = logging.WithRunID(ctx, uuid.NewString())
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bookshelf",
		Short:   "Personal library catalog",
		Version: a.version,
		Long: `Bookshelf keeps a catalog of your books in a single JSON or YAML file.

Run it without arguments for the interactive menu, or use the subcommands
to add, remove, search, list and change the status of books directly.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runMenu,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Catalog Commands:",
	})

	globals.AddFlags(rootCmd)

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("bookshelf {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	flags, err := globals.Parse(cmd)
	if err != nil {
		return err
	}

	if _, err := output.ParseFormat(flags.Output); err != nil {
		return err
	}

	if flags.Config != "" {
		config, err := LoadConfig(flags.Config)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(FlagValues{
		File:     flags.File,
		Format:   flags.Output,
		LogLevel: flags.LogLevel,
		Verbose:  flags.Verbose,
		Quiet:    flags.Quiet,
		NoColor:  flags.NoColor,
	})

	// Reconfigure the default logger so packages that fall back to it
	// log with the same settings, tagged with this run
	logConfig := newLogConfig(a.config)
	if runID := logging.RunID(cmd.Context()); runID != "" {
		logConfig.Fields["run_id"] = runID
	}
	logging.Configure(logConfig)
	a.logger = logging.Default()
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	a.logger.Debug().
		Str("command", cmd.CommandPath()).
		Str("catalog", a.config.CatalogFile).
		Str("config_file", a.config.ConfigFile).
		Msg("Command starting")

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		writeError(os.Stderr, err)
		os.Exit(1)
	}
}

// writeError prints err as an error alert, colored on a terminal.
func writeError(w io.Writer, err error) {
	_ = alerts.NewFormatWriter(w, output.FormatTable).WriteAlert(alerts.Failed(err))
}
