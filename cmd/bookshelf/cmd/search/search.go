// Package search implements the search command.
package search

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
)

// NewCommand creates the search command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		GroupID: "core",
		Aliases: []string{"find"},
		Short:   "Find books by title, author or year",
		Long: `Search matches the query against title, author and year without
regard to case. Year matches are substrings of the year, so 202 finds
books from 2021 and 2023.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  bookshelf search herbert
  bookshelf search 196 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			results := cat.Search(query)
			format := output.Format(app.OutputFormat())
			if len(results) == 0 && format.IsTabular() {
				n, err := notify.NewFromCommand(cmd)
				if err != nil {
					return err
				}
				return n.Alert(alerts.NoMatches(query))
			}

			return output.FormatBooks(cmd.OutOrStdout(), results, format)
		},
	}
}
