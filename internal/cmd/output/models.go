package output

import (
	"io"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/library"
)

// FormatBooks writes books in the requested format. Tabular formats get
// one row per book; json and yaml get the storage records.
func FormatBooks(w io.Writer, books []library.Book, format Format) error {
	if format.IsTabular() {
		return NewFormatter(format).Format(w, table.BooksToTableData(books, format == FormatWide))
	}

	records := make([]library.Record, len(books))
	for i, b := range books {
		records[i] = library.ToRecord(b)
	}
	return NewFormatter(format).Format(w, records)
}

// FormatBook writes a single book.
func FormatBook(w io.Writer, book library.Book, format Format) error {
	if format.IsTabular() {
		return FormatBooks(w, []library.Book{book}, format)
	}
	return NewFormatter(format).Format(w, library.ToRecord(book))
}
