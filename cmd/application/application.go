// Package application provides the application interface for bookshelf commands.
//
// Commands accept an Application rather than the concrete app type so they
// can be tested against a catalog on an in-memory filesystem.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/bookshelf/pkg/library"
)

// Application provides what commands need from the running app.
type Application interface {
	// Catalog returns the catalog named by the configuration, opening it
	// on first use. Decode and IO errors from opening are returned as is.
	Catalog() (*library.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
