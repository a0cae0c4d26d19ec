// Package remove implements the remove command.
package remove

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewCommand creates the remove command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		GroupID: "core",
		Aliases: []string{"rm"},
		Short:   "Remove a book by id",
		Args:    cobra.ExactArgs(1),
		Example: `  bookshelf remove 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ParseID(args[0])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			if err := cat.Remove(id); err != nil {
				return err
			}
			logging.FromContext(logging.WithBookID(cmd.Context(), id)).
				Debug().Msg("Remove command finished")

			n, err := notify.NewFromCommand(cmd)
			if err != nil {
				return err
			}
			return n.Alert(alerts.BookRemoved(id))
		},
	}
}

// ParseID parses a book id argument.
func ParseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.NewValidationError("id", arg, "must be a whole number")
	}
	return id, nil
}
