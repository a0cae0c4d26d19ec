package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/library"
)

func sampleBooks() []library.Book {
	id0, id2 := 0, 2
	return []library.Book{
		{ID: &id0, Title: "Dune", Author: "Frank Herbert", Year: 1965, Status: library.StatusInStock},
		{ID: &id2, Title: "Мастер и Маргарита", Author: "Булгаков", Year: 1967, Status: library.StatusGiven},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"wide", FormatWide, false},
		{"markdown", FormatMarkdown, false},
		{"", "", false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormatExplicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatBooksJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBooks(&buf, sampleBooks(), FormatJSON))

	out := buf.String()
	assert.Contains(t, out, `"title": "Мастер и Маргарита"`)
	assert.Contains(t, out, `"status": "выдана"`)
	assert.True(t, strings.HasPrefix(out, "["))
}

func TestFormatBooksEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBooks(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatBooksYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBooks(&buf, sampleBooks(), FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "title: Dune")
	assert.Contains(t, out, "в наличии")
}

func TestFormatBooksTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBooks(&buf, sampleBooks(), FormatTable))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "TITLE")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Frank Herbert")
	assert.Contains(t, out, "В Наличии")
}

func TestFormatBooksMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBooks(&buf, sampleBooks(), FormatMarkdown))

	out := buf.String()
	assert.Contains(t, out, "| ID")
	assert.Contains(t, out, "Dune")
	assert.Contains(t, out, "Выдана")
}

func TestMarkdownFormatterRejectsRawData(t *testing.T) {
	var buf bytes.Buffer
	err := (&MarkdownFormatter{}).Format(&buf, map[string]int{"a": 1})
	assert.Error(t, err)
}

func TestTableFormatterFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, map[string]int{"books": 2}))
	assert.JSONEq(t, `{"books":2}`, buf.String())
}

func TestTableFormatterPointerData(t *testing.T) {
	var buf bytes.Buffer
	data := &table.Data{Headers: []string{"Name"}, Rows: [][]string{{"x"}}}
	require.NoError(t, (&TableFormatter{}).Format(&buf, data))
	assert.Contains(t, buf.String(), "x")
}

func TestFormatBookSingle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatBook(&buf, sampleBooks()[0], FormatJSON))
	assert.JSONEq(t, `{"id":0,"title":"Dune","author":"Frank Herbert","year":1965,"status":"в наличии"}`, buf.String())
}
