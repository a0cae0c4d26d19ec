package library

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/agentstation/bookshelf/internal/utils/ptr"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Book is a single catalog entry.
type Book struct {
	ID     *int   `json:"id" yaml:"id"` // nil until the book is added to a catalog
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
	Year   int    `json:"year" yaml:"year"`
	Status Status `json:"status" yaml:"status"`
}

// NewBook returns a book without an id and with StatusInStock.
func NewBook(title, author string, year int) Book {
	return Book{
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusInStock,
	}
}

// HasID reports whether the book has been assigned an id.
func (b Book) HasID() bool {
	return b.ID != nil
}

// IDValue returns the id, or -1 when unset.
func (b Book) IDValue() int {
	if b.ID == nil {
		return -1
	}
	return *b.ID
}

// clone copies the book so that the id pointer is not shared.
func (b Book) clone() Book {
	if b.ID != nil {
		b.ID = ptr.Int(*b.ID)
	}
	return b
}

// Record is the serialized form of a Book. Every field is required when
// decoding; pointers distinguish a missing field from a zero value.
type Record struct {
	ID     *int    `json:"id" yaml:"id" validate:"required"`
	Title  *string `json:"title" yaml:"title" validate:"required"`
	Author *string `json:"author" yaml:"author" validate:"required"`
	Year   *int    `json:"year" yaml:"year" validate:"required"`
	Status *string `json:"status" yaml:"status" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that no field is missing.
func (r Record) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		missing := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			missing = append(missing, fe.Field())
		}
		return errors.NewValidationError(missing[0], nil, "missing required field "+strings.Join(missing, ", "))
	}
	return errors.WrapValidation("record", err)
}

// ToRecord converts a book into its serialized form.
func ToRecord(b Book) Record {
	var id *int
	if b.ID != nil {
		id = ptr.Int(*b.ID)
	}
	return Record{
		ID:     id,
		Title:  ptr.String(b.Title),
		Author: ptr.String(b.Author),
		Year:   ptr.Int(b.Year),
		Status: ptr.String(b.Status.String()),
	}
}

// FromRecord rebuilds a book, including its id. Unknown status labels
// become StatusInStock. Missing fields are reported as a ValidationError.
func FromRecord(r Record) (Book, error) {
	if err := r.Validate(); err != nil {
		return Book{}, err
	}
	status, _ := ParseStatus(*r.Status)
	book := NewBook(*r.Title, *r.Author, *r.Year)
	book.Status = status
	book.ID = ptr.Int(*r.ID)
	return book, nil
}
