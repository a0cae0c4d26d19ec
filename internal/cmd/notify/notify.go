// Package notify provides a unified API for alerts in the CLI.
package notify

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// Notifier sends command status alerts in the command's output format.
type Notifier struct {
	alertWriter alerts.Writer
	config      Config
}

// Config controls notification behavior.
type Config struct {
	OutputFormat string    // "table", "json", "yaml"
	AlertWriter  io.Writer // Where to write alerts
	UseColor     bool      // Whether to use colored output
	Quiet        bool      // Drop success and info alerts
}

// New creates a new Notifier with the given configuration.
func New(config Config) *Notifier {
	format := output.DetectFormat(config.OutputFormat)
	writer := alerts.NewFormatWriter(config.AlertWriter, format).WithConfig(alerts.WriterConfig{
		ShowDetails: true,
		UseColor:    config.UseColor,
		Quiet:       config.Quiet,
	})

	return &Notifier{
		alertWriter: writer,
		config:      config,
	}
}

// NewFromCommand creates a Notifier configured from a Cobra command.
// Alerts go to the command's standard output so they follow piping.
func NewFromCommand(cmd *cobra.Command) (*Notifier, error) {
	globalFlags, err := globals.Parse(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to parse global flags: %w", err)
	}

	return New(Config{
		OutputFormat: globalFlags.Output,
		AlertWriter:  cmd.OutOrStdout(),
		UseColor:     !globalFlags.NoColor && isTerminal(cmd.OutOrStdout()),
		Quiet:        globalFlags.Quiet,
	}), nil
}

// Alert sends a prepared alert.
func (n *Notifier) Alert(alert *alerts.Alert) error {
	return n.alertWriter.WriteAlert(alert)
}
