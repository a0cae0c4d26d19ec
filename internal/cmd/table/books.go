// Package table converts catalog data into rows for tabular output.
package table

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/bookshelf/pkg/library"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// BooksToTableData converts books to table rows in the given order.
// Wide output adds the raw storage label of the status.
func BooksToTableData(books []library.Book, wide bool) Data {
	headers := []string{"ID", "Title", "Author", "Year", "Status"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignRight, AlignLeft}
	if wide {
		headers = append(headers, "Label")
		align = append(align, AlignLeft)
	}

	caser := cases.Title(language.Russian)
	rows := make([][]string, 0, len(books))
	for _, b := range books {
		row := []string{
			FormatID(b),
			dash(b.Title),
			dash(b.Author),
			strconv.Itoa(b.Year),
			caser.String(b.Status.String()),
		}
		if wide {
			row = append(row, b.Status.String())
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// StatusesToTableData lists the numbered status choices.
func StatusesToTableData(choices []library.StatusChoice) Data {
	rows := make([][]string, 0, len(choices))
	for _, c := range choices {
		rows = append(rows, []string{strconv.Itoa(c.Index), c.Status.String()})
	}
	return Data{
		Headers:         []string{"#", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}

// FormatID renders a book id, or "-" for a book that has none.
func FormatID(b library.Book) string {
	if !b.HasID() {
		return "-"
	}
	return strconv.Itoa(*b.ID)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
