// Package list implements the list command.
package list

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List all books in catalog order",
		Args:    cobra.NoArgs,
		Example: `  bookshelf list
  bookshelf list --format wide
  bookshelf list -o markdown > books.md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			books := cat.Books()
			format := output.Format(app.OutputFormat())
			if len(books) == 0 && format.IsTabular() {
				n, err := notify.NewFromCommand(cmd)
				if err != nil {
					return err
				}
				return n.Alert(alerts.EmptyCatalog())
			}

			app.Logger().Debug().Int("books", len(books)).Msg("Listing catalog")
			return output.FormatBooks(cmd.OutOrStdout(), books, format)
		},
	}
}
