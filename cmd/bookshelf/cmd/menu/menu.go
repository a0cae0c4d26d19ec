// Package menu implements the menu command.
package menu

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	menuui "github.com/agentstation/bookshelf/internal/menu"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the menu command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "menu",
		GroupID: "core",
		Short:   "Start the interactive menu",
		Long: `Menu starts the interactive session. It is also what runs when
bookshelf is started without a command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd, app)
		},
	}
}

// Run opens the catalog and runs the interactive menu on the command's
// standard streams until the user exits.
func Run(cmd *cobra.Command, app application.Application) error {
	cat, err := app.Catalog()
	if err != nil {
		return err
	}

	ctx := logging.WithOperation(cmd.Context(), "menu")
	m := menuui.New(cat,
		menuui.WithInput(cmd.InOrStdin()),
		menuui.WithOutput(cmd.OutOrStdout()),
		menuui.WithLogger(logging.FromContext(ctx)),
	)
	return m.Run(ctx)
}
