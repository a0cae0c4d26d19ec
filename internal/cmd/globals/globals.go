// Package globals provides shared flag structures and utilities for CLI commands.
package globals

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/agentstation/bookshelf/internal/cmd/constants"
)

// Flags holds global common flags across all commands.
type Flags struct {
	File     string
	Config   string
	Output   string
	LogLevel string
	Quiet    bool
	Verbose  bool
	NoColor  bool
}

// AddFlags adds common flags to the root command.
func AddFlags(cmd *cobra.Command) *Flags {
	flags := &Flags{}

	cmd.PersistentFlags().StringVarP(&flags.File, "file", "f", "",
		"Catalog file (default library.json, .yaml/.yml selects YAML)")
	cmd.PersistentFlags().StringVar(&flags.Config, "config", "",
		"Config file (default $HOME/.bookshelf.yaml)")

	cmd.PersistentFlags().StringVarP(&flags.Output, "format", "o", "",
		constants.FormatHelp)
	// --output and --fmt are hidden aliases for --format
	cmd.PersistentFlags().StringVar(&flags.Output, "output", "", "")
	cmd.PersistentFlags().StringVar(&flags.Output, "fmt", "", "")
	_ = cmd.PersistentFlags().MarkHidden("output")
	_ = cmd.PersistentFlags().MarkHidden("fmt")

	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false,
		"Minimal output")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false,
		"Verbose output")
	cmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false,
		"Disable colored output")

	return flags
}

// Parse extracts global flags from the command hierarchy.
// This is useful for subcommands that need to access global flags when
// they weren't passed the flags struct directly.
func Parse(cmd *cobra.Command) (*Flags, error) {
	// Walk up the command hierarchy to find persistent flags
	root := cmd
	for root.Parent() != nil {
		root = root.Parent()
	}

	pf := root.PersistentFlags()
	return &Flags{
		File:     getString(pf, "file"),
		Config:   getString(pf, "config"),
		Output:   getString(pf, "format"),
		LogLevel: getString(pf, "log-level"),
		Quiet:    getBool(pf, "quiet"),
		Verbose:  getBool(pf, "verbose"),
		NoColor:  getBool(pf, "no-color"),
	}, nil
}

// getString returns a flag value, or "" when the flag is not defined.
func getString(fs *pflag.FlagSet, name string) string {
	v, _ := fs.GetString(name)
	return v
}

func getBool(fs *pflag.FlagSet, name string) bool {
	v, _ := fs.GetBool(name)
	return v
}
