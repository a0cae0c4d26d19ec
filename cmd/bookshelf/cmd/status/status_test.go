package status

import (
	"strings"
	"testing"

	"github.com/agentstation/bookshelf/internal/cmd/application"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/library"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    library.Status
		wantErr bool
	}{
		{"first index", "1", library.StatusInStock, false},
		{"second index", "2", library.StatusGiven, false},
		{"label", "выдана", library.StatusGiven, false},
		{"label with spaces", "  в наличии ", library.StatusInStock, false},
		{"index zero", "0", library.StatusInStock, true},
		{"index past the end", "3", library.StatusInStock, true},
		{"negative index", "-1", library.StatusInStock, true},
		{"english word", "given", library.StatusInStock, true},
		{"empty", "", library.StatusInStock, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.arg)
			if tt.wantErr {
				if !errors.IsValidationError(err) {
					t.Fatalf("Parse(%q) error = %v, want a validation error", tt.arg, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParseUnknownLabelListsChoices(t *testing.T) {
	_, err := Parse("lost")
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{`1="в наличии"`, `2="выдана"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestCommandChangesStatus(t *testing.T) {
	app, cat := application.NewMemoryMock(t, "table")
	if _, err := cat.Add("Dune", "Herbert", 1965); err != nil {
		t.Fatalf("Add: %v", err)
	}

	out, err := application.RunCommand(t, NewCommand(app), nil, "0", "2", "-o", "table")
	if err != nil {
		t.Fatalf("status command failed: %v", err)
	}
	if want := "✓ Book 0 is now выдана\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	book, err := cat.Get(0)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if book.Status != library.StatusGiven {
		t.Errorf("status = %v, want %v", book.Status, library.StatusGiven)
	}
}

func TestCommandSameStatus(t *testing.T) {
	app, cat := application.NewMemoryMock(t, "table")
	if _, err := cat.Add("Dune", "Herbert", 1965); err != nil {
		t.Fatalf("Add: %v", err)
	}

	out, err := application.RunCommand(t, NewCommand(app), nil, "0", "в наличии", "-o", "table")
	if err != nil {
		t.Fatalf("status command failed: %v", err)
	}
	if want := "i Book 0 is already в наличии\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestCommandUnknownBook(t *testing.T) {
	app, _ := application.NewMemoryMock(t, "table")

	_, err := application.RunCommand(t, NewCommand(app), nil, "4", "1")
	if !errors.IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestCommandListsStatuses(t *testing.T) {
	app, _ := application.NewMemoryMock(t, "json")

	out, err := application.RunCommand(t, NewCommand(app), nil, "-o", "json")
	if err != nil {
		t.Fatalf("status command failed: %v", err)
	}
	for _, want := range []string{`"label": "в наличии"`, `"index": 2`, `"label": "выдана"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestCommandArgs(t *testing.T) {
	app, _ := application.NewMemoryMock(t, "table")

	if _, err := application.RunCommand(t, NewCommand(app), nil, "0"); err == nil {
		t.Error("expected an error for a single argument")
	}
}
