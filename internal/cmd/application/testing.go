package application

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/agentstation/bookshelf/internal/cmd/globals"
	"github.com/agentstation/bookshelf/pkg/library"
	"github.com/agentstation/bookshelf/pkg/logging"
)

// NewMemoryMock returns a Mock serving a fresh catalog on an in-memory
// filesystem, reporting format as the output format.
func NewMemoryMock(t testing.TB, format string) (*Mock, *library.Catalog) {
	t.Helper()

	cat, err := library.Open("library.json",
		library.WithFs(afero.NewMemMapFs()),
		library.WithLogger(logging.NewNopLogger()),
	)
	if err != nil {
		t.Fatalf("Failed to open catalog: %v", err)
	}

	return &Mock{
		CatalogFunc:      func() (*library.Catalog, error) { return cat, nil },
		OutputFormatFunc: func() string { return format },
	}, cat
}

// RunCommand mounts cmd under a root carrying the global flags and the
// "core" group, runs it with args and returns everything it printed.
func RunCommand(t testing.TB, cmd *cobra.Command, stdin io.Reader, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{
		Use:           "bookshelf",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddGroup(&cobra.Group{ID: "core", Title: "Catalog Commands:"})
	globals.AddFlags(root)
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	if stdin != nil {
		root.SetIn(stdin)
	}
	root.SetArgs(append([]string{cmd.Name()}, args...))

	err := root.Execute()
	return out.String(), err
}
