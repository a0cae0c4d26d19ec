package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/logging"
)

func testConfig() *Config {
	return &Config{
		CatalogFile: "library.json",
		LogFormat:   "json",
		LogOutput:   "discard",
	}
}

func newTestApp(t *testing.T, fs afero.Fs, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	app, err := New("1.0.0", "abc123", "2024-01-01", "test",
		WithConfig(testConfig()),
		WithLogger(logging.NewNopLogger()),
		WithFs(fs),
		WithIO(strings.NewReader(stdin), &out, &out),
	)
	require.NoError(t, err)
	return app, &out
}

// run executes one command line on a fresh app sharing fs.
func run(t *testing.T, fs afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()
	app, out := newTestApp(t, fs, stdin)
	err := app.Execute(context.Background(), args)
	return out.String(), err
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t, afero.NewMemMapFs(), "")

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2024-01-01" {
		t.Errorf("Date() = %s, want 2024-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.Config() == nil {
		t.Error("Config() returned nil")
	}
}

func TestApp_NilConfig(t *testing.T) {
	_, err := New("dev", "", "", "", WithConfig(nil))
	assert.True(t, errors.IsConfig(err))
}

// TestApp_Catalog_Singleton verifies concurrent Catalog() calls share one catalog.
func TestApp_Catalog_Singleton(t *testing.T) {
	app, _ := newTestApp(t, afero.NewMemMapFs(), "")

	const goroutines = 20
	var wg sync.WaitGroup
	ids := make([]any, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			cat, err := app.Catalog()
			if err == nil {
				ids[idx] = cat
			}
		}(i)
	}
	wg.Wait()

	first, err := app.Catalog()
	require.NoError(t, err)
	for i, c := range ids {
		assert.Same(t, first, c, "goroutine %d got a different catalog", i)
	}
}

func TestApp_CatalogDecodeError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "library.json", []byte("{not json"), 0o644))

	_, err := run(t, fs, "", "list")
	require.Error(t, err)
	assert.True(t, errors.IsDecode(err))
}

func TestExecute_Scenario(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "", "add", "--title", "Dune", "--author", "Herbert", "--year", "1965", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "✓ Book added with ID 0\n", out)

	_, err = run(t, fs, "", "add", "-t", "Foundation", "-a", "Asimov", "-y", "1951", "-o", "table")
	require.NoError(t, err)

	out, err = run(t, fs, "", "remove", "0", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "✓ Book 0 removed\n", out)

	out, err = run(t, fs, "", "add", "-t", "Hyperion", "-a", "Simmons", "-y", "1989", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"title":"Hyperion","author":"Simmons","year":1989,"status":"в наличии"}`, out)

	out, err = run(t, fs, "", "list", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id":1,"title":"Foundation","author":"Asimov","year":1951,"status":"в наличии"},
		{"id":2,"title":"Hyperion","author":"Simmons","year":1989,"status":"в наличии"}
	]`, out)
}

func TestExecute_Add_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"blank title", []string{"add", "-t", "  ", "-a", "A", "-y", "2000"}},
		{"negative year", []string{"add", "-t", "T", "-a", "A", "-y", "-1"}},
		{"future year", []string{"add", "-t", "T", "-a", "A", "-y", "99999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			_, err := run(t, fs, "", tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			exists, _ := afero.Exists(fs, "library.json")
			assert.False(t, exists)
		})
	}

	t.Run("missing flag", func(t *testing.T) {
		_, err := run(t, afero.NewMemMapFs(), "", "add", "-t", "T")
		assert.Error(t, err)
	})
}

func TestExecute_RemoveUnknown(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "", "remove", "9")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = run(t, afero.NewMemMapFs(), "", "remove", "nine")
	assert.True(t, errors.IsValidationError(err))
}

func TestExecute_Search(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, args := range [][]string{
		{"add", "-t", "Dune", "-a", "Frank Herbert", "-y", "2021"},
		{"add", "-t", "Emma", "-a", "Jane Austen", "-y", "1999"},
	} {
		_, err := run(t, fs, "", append(args, "-q")...)
		require.NoError(t, err)
	}

	out, err := run(t, fs, "", "search", "202", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":0,"title":"Dune","author":"Frank Herbert","year":2021,"status":"в наличии"}]`, out)

	out, err = run(t, fs, "", "search", "jane", "austen", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "title: Emma")

	out, err = run(t, fs, "", "search", "tolkien", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "i No books match \"tolkien\"\n", out)

	out, err = run(t, fs, "", "search", "tolkien", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestExecute_Status(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := run(t, fs, "", "add", "-t", "Dune", "-a", "Herbert", "-y", "1965", "-q")
	require.NoError(t, err)

	out, err := run(t, fs, "", "status", "0", "выдана", "-o", "table")
	require.NoError(t, err)
	assert.Equal(t, "✓ Book 0 is now выдана\n", out)

	out, err = run(t, fs, "", "status", "0", "1", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"status": "в наличии"`)

	_, err = run(t, fs, "", "status", "0", "lost")
	assert.True(t, errors.IsValidationError(err))

	_, err = run(t, fs, "", "status", "5", "2")
	assert.True(t, errors.IsNotFound(err))

	_, err = run(t, fs, "", "status", "0")
	assert.Error(t, err)

	out, err = run(t, fs, "", "status", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"index":1,"label":"в наличии"},{"index":2,"label":"выдана"}]`, out)
}

func TestExecute_MenuIsDefault(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "1\nDune\nHerbert\n1965\n4\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Book added with ID 0.")
	assert.Contains(t, out, "ID: 0, Title: Dune, Author: Herbert, Year: 1965, Status: в наличии")

	out, err = run(t, fs, "4\n", "menu")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: 0, Title: Dune")
}

func TestExecute_FileFlag(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := run(t, fs, "", "--file", "shelf/books.yaml", "add", "-t", "Dune", "-a", "Herbert", "-y", "1965", "-q")
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "shelf/books.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "title: Dune")

	exists, _ := afero.Exists(fs, "library.json")
	assert.False(t, exists)
}

func TestExecute_BadFormat(t *testing.T) {
	_, err := run(t, afero.NewMemMapFs(), "", "list", "--format", "csv")
	assert.Error(t, err)
}

func TestExecute_Version(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "", "version")
	require.NoError(t, err)
	assert.Equal(t, "bookshelf 1.0.0\n", out)

	out, err = run(t, afero.NewMemMapFs(), "", "version", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "commit:   abc123")
}

func TestShutdown(t *testing.T) {
	app, _ := newTestApp(t, afero.NewMemMapFs(), "")
	assert.NoError(t, app.Shutdown(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, app.Shutdown(ctx))
}

func TestExecute_LogsRunID(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "bookshelf.log")
	config := testConfig()
	config.LogOutput = logFile

	previous := *logging.Default()
	t.Cleanup(func() { logging.SetDefault(previous) })

	var out bytes.Buffer
	app, err := New("1.0.0", "", "", "",
		WithConfig(config),
		WithFs(afero.NewMemMapFs()),
		WithIO(strings.NewReader(""), &out, &out),
	)
	require.NoError(t, err)

	require.NoError(t, app.Execute(context.Background(), []string{"list", "-o", "json", "--log-level", "debug"}))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id":"`)
	assert.Contains(t, string(data), "Command starting")
	assert.Contains(t, string(data), `"catalog":"library.json"`)

	// the default logger now follows the command's settings
	logging.Info().Msg("After command")
	data, err = os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	last := lines[len(lines)-1]
	assert.Contains(t, last, "After command")
	assert.Contains(t, last, `"run_id":"`)
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer
	writeError(&buf, errors.BookNotFound(7))

	if want := "✗ Error: book with ID 7 not found\n"; buf.String() != want {
		t.Errorf("writeError() = %q, want %q", buf.String(), want)
	}
}
