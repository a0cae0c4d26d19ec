// Package add implements the add command.
package add

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/alerts"
	"github.com/agentstation/bookshelf/internal/cmd/notify"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Input holds the add command flags.
type Input struct {
	Title  string `validate:"required"`
	Author string `validate:"required"`
	Year   int    `validate:"gte=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the input the way the interactive menu does: title and
// author must be non-blank and year must lie between 0 and maxYear.
func (in *Input) Validate(maxYear int) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)

	if err := validate.Struct(in); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return errors.NewValidationError(strings.ToLower(fe.Field()), fe.Value(),
				fmt.Sprintf("failed %q check", fe.Tag()))
		}
		return errors.WrapValidation("input", err)
	}

	if in.Year < constants.MinYear || in.Year > maxYear {
		return errors.NewValidationError("year", in.Year,
			fmt.Sprintf("must be between %d and %d", constants.MinYear, maxYear))
	}
	return nil
}

// NewCommand creates the add command.
func NewCommand(app application.Application) *cobra.Command {
	in := &Input{}

	cmd := &cobra.Command{
		Use:     "add",
		GroupID: "core",
		Short:   "Add a book to the catalog",
		Args:    cobra.NoArgs,
		Example: `  bookshelf add --title Dune --author "Frank Herbert" --year 1965
  bookshelf add -t Dune -a "Frank Herbert" -y 1965 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := in.Validate(time.Now().Year()); err != nil {
				return err
			}

			cat, err := app.Catalog()
			if err != nil {
				return err
			}

			book, err := cat.Add(in.Title, in.Author, in.Year)
			if err != nil {
				return err
			}

			format := output.Format(app.OutputFormat())
			if !format.IsTabular() {
				return output.FormatBook(cmd.OutOrStdout(), book, format)
			}

			n, err := notify.NewFromCommand(cmd)
			if err != nil {
				return err
			}
			return n.Alert(alerts.BookAdded(*book.ID))
		},
	}

	cmd.Flags().StringVarP(&in.Title, "title", "t", "", "Book title")
	cmd.Flags().StringVarP(&in.Author, "author", "a", "", "Book author")
	cmd.Flags().IntVarP(&in.Year, "year", "y", 0, "Publication year")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("author")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
