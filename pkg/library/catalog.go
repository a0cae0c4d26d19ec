// Package library implements the bookshelf catalog: the Book and Status
// entity model and a Catalog that keeps an ordered list of books in memory
// and rewrites its whole file after every change.
//
// A Catalog is not safe for concurrent use, and nothing stops two processes
// from overwriting each other's file; the last writer wins.
package library

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"

	"github.com/agentstation/bookshelf/pkg/constants"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Catalog is an ordered collection of books persisted to a single file.
// Insertion order is display order; after removals it need not match id
// order.
type Catalog struct {
	path   string
	fs     afero.Fs
	codec  Codec
	logger *zerolog.Logger
	books  []Book
}

// Open loads the catalog stored at path. A missing file yields an empty
// catalog and nothing is written until the first change. Content that
// cannot be decoded, or a record with a missing field, returns an error
// for which errors.IsDecode is true.
func Open(path string, opts ...Option) (*Catalog, error) {
	if path == "" {
		return nil, errors.NewConfigError("catalog", "no catalog path configured", nil)
	}

	o := defaults().apply(opts...)
	if o.codec == nil {
		o.codec = CodecFor(path)
	}

	c := &Catalog{
		path:   path,
		fs:     o.fs,
		codec:  o.codec,
		logger: o.logger,
		books:  []Book{},
	}
	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the storage location.
func (c *Catalog) Path() string {
	return c.path
}

// Len returns the number of books.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns copies of all books in collection order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	for i, b := range c.books {
		out[i] = b.clone()
	}
	return out
}

// IDs returns the ids of all books in collection order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.books))
	for i, b := range c.books {
		ids[i] = b.IDValue()
	}
	return ids
}

// Get returns the book with the given id.
func (c *Catalog) Get(id int) (Book, error) {
	i := c.indexOf(id)
	if i < 0 {
		return Book{}, errors.BookNotFound(id)
	}
	return c.books[i].clone(), nil
}

// Add creates a book with the next id and StatusInStock, appends it and
// persists the catalog.
func (c *Catalog) Add(title, author string, year int) (Book, error) {
	book := NewBook(title, author, year)
	id := c.generateID()
	book.ID = &id

	c.books = append(c.books, book)
	if err := c.persist(); err != nil {
		c.books = c.books[:len(c.books)-1]
		return Book{}, err
	}

	c.logger.Info().
		Int("book_id", id).
		Str("title", title).
		Msg("Book added")
	return book.clone(), nil
}

// generateID returns one more than the largest id in the catalog, or 0 for
// an empty catalog. Gaps left by removals are never reused.
func (c *Catalog) generateID() int {
	maxID, found := -1, false
	for _, b := range c.books {
		if b.ID == nil {
			continue
		}
		if !found || *b.ID > maxID {
			maxID, found = *b.ID, true
		}
	}
	return maxID + 1
}

// Remove deletes the book with the given id and persists the catalog. When
// no book matches, a NotFoundError is returned and nothing is written.
func (c *Catalog) Remove(id int) error {
	i := c.indexOf(id)
	if i < 0 {
		return errors.BookNotFound(id)
	}

	removed := c.books[i]
	c.books = slices.Delete(c.books, i, i+1)
	if err := c.persist(); err != nil {
		c.books = slices.Insert(c.books, i, removed)
		return err
	}

	c.logger.Info().Int("book_id", id).Msg("Book removed")
	return nil
}

// Search returns the books whose title, author or year contains query,
// ignoring case, in collection order. The result is never nil.
func (c *Catalog) Search(query string) []Book {
	fold := cases.Fold()
	q := fold.String(query)

	results := []Book{}
	for _, b := range c.books {
		if strings.Contains(fold.String(b.Title), q) ||
			strings.Contains(fold.String(b.Author), q) ||
			strings.Contains(strconv.Itoa(b.Year), q) {
			results = append(results, b.clone())
		}
	}

	c.logger.Debug().
		Str("query", query).
		Int("matches", len(results)).
		Msg("Searched catalog")
	return results
}

// ChangeStatus sets the status of a book. The catalog is only persisted
// when the status actually changes.
func (c *Catalog) ChangeStatus(id int, status Status) (Book, error) {
	if !status.Valid() {
		return Book{}, errors.NewValidationError("status", int(status), "unknown status")
	}

	i := c.indexOf(id)
	if i < 0 {
		return Book{}, errors.BookNotFound(id)
	}

	book := &c.books[i]
	if book.Status == status {
		return book.clone(), nil
	}

	previous := book.Status
	book.Status = status
	if err := c.persist(); err != nil {
		book.Status = previous
		return Book{}, err
	}

	c.logger.Info().
		Int("book_id", id).
		Stringer("from", previous).
		Stringer("to", status).
		Msg("Book status changed")
	return book.clone(), nil
}

func (c *Catalog) indexOf(id int) int {
	return slices.IndexFunc(c.books, func(b Book) bool {
		return b.ID != nil && *b.ID == id
	})
}

// load reads and decodes the catalog file if it exists.
func (c *Catalog) load() error {
	data, err := afero.ReadFile(c.fs, c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug().Str("path", c.path).Msg("Catalog file not found, starting empty")
			return nil
		}
		return errors.WrapIO("read", c.path, err)
	}

	records, err := c.codec.Decode(data)
	if err != nil {
		return errors.WrapParse(c.codec.Format(), c.path, err)
	}

	books := make([]Book, 0, len(records))
	seen := make(map[int]int, len(records))
	for i, rec := range records {
		book, err := FromRecord(rec)
		if err != nil {
			return errors.NewParseError(c.codec.Format(), c.path, fmt.Sprintf("record %d: %v", i, err), err)
		}
		if first, dup := seen[*book.ID]; dup {
			c.logger.Warn().
				Int("book_id", *book.ID).
				Int("first_record", first).
				Int("record", i).
				Msg("Duplicate book id in catalog file")
		} else {
			seen[*book.ID] = i
		}
		books = append(books, book)
	}
	c.books = books

	c.logger.Debug().
		Str("path", c.path).
		Int("books", len(books)).
		Msg("Catalog loaded")
	return nil
}

// persist writes every book to a temporary file and renames it over the
// catalog file.
func (c *Catalog) persist() error {
	records := make([]Record, len(c.books))
	for i, b := range c.books {
		records[i] = ToRecord(b)
	}

	data, err := c.codec.Encode(records)
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." && dir != "" {
		if err := c.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	tmp := c.path + constants.TempSuffix
	if err := afero.WriteFile(c.fs, tmp, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", tmp, err)
	}
	if err := c.fs.Rename(tmp, c.path); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.WrapIO("rename", c.path, err)
	}

	c.logger.Debug().
		Str("path", c.path).
		Int("books", len(c.books)).
		Int("bytes", len(data)).
		Msg("Catalog persisted")
	return nil
}
