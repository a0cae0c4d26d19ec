// Package status implements the status command.
package status

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/cmd/bookshelf/cmd/remove"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/library"
)

// NewCommand creates the status command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "status [<id> <status>]",
		GroupID: "core",
		Short:   "Change the status of a book",
		Long: `Status sets a book's status by label or by its number in the list
printed by "bookshelf status" without arguments.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts no arguments or <id> <status>, received %d", len(args))
			}
			return nil
		},
		Example: `  bookshelf status            # list the statuses
  bookshelf status 3 выдана
  bookshelf status 3 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := output.Format(app.OutputFormat())
			if len(args) == 0 {
				return listStatuses(cmd, format)
			}

			id, err := remove.ParseID(args[0])
			if err != nil {
				return err
			}
			st, err := Parse(args[1])
			if err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			before, err := cat.Get(id)
			if err != nil {
				return err
			}
			book, err := cat.ChangeStatus(id, st)
			if err != nil {
				return err
			}

			if !format.IsTabular() {
				return output.FormatBook(cmd.OutOrStdout(), book, format)
			}
			n, err := notify.NewFromCommand(cmd)
			if err != nil {
				return err
			}
			if before.Status == book.Status {
				return n.Alert(alerts.StatusUnchanged(id, book.Status))
			}
			return n.Alert(alerts.StatusChanged(id, book.Status))
		},
	}
}

// Parse resolves a status given as a label or as its 1-based list number.
func Parse(arg string) (library.Status, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if st, ok := library.StatusByIndex(n); ok {
			return st, nil
		}
		return library.StatusInStock, errors.NewValidationError("status", arg, "no status with that number")
	}

	if st, ok := library.ParseStatus(strings.TrimSpace(arg)); ok {
		return st, nil
	}

	labels := make([]string, 0, 2)
	for _, c := range library.Statuses() {
		labels = append(labels, fmt.Sprintf("%d=%q", c.Index, c.Status))
	}
	return library.StatusInStock, errors.NewValidationError("status", arg,
		"unknown status, use one of "+strings.Join(labels, ", "))
}

func listStatuses(cmd *cobra.Command, format output.Format) error {
	choices := library.Statuses()
	if format.IsTabular() {
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), table.StatusesToTableData(choices))
	}

	type choice struct {
		Index int    `json:"index" yaml:"index"`
		Label string `json:"label" yaml:"label"`
	}
	out := make([]choice, len(choices))
	for i, c := range choices {
		out[i] = choice{Index: c.Index, Label: c.Status.String()}
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), out)
}
