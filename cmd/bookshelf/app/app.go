// Package app provides the application context and dependency management
// for the bookshelf CLI: configuration, logging, and the lazily opened
// catalog shared by every command.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/bookshelf/cmd/application"
	"github.com/agentstation/bookshelf/internal/cmd/output"
	"github.com/agentstation/bookshelf/pkg/errors"
	"github.com/agentstation/bookshelf/pkg/library"
)

var _ application.Application = (*App)(nil)

// App represents the bookshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger
	fs     afero.Fs

	// Standard streams; nil means the process streams
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Catalog instance (lazy-initialized, singleton)
	mu      sync.Mutex
	catalog *library.Catalog
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration from the environment and the
// default config file; flags are applied when a command runs.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
		fs:      afero.NewOsFs(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, err
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detected from the
// terminal when none was given.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Catalog returns the catalog, opening it on first use.
func (a *App) Catalog() (*library.Catalog, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.catalog != nil {
		return a.catalog, nil
	}

	cat, err := library.Open(a.config.CatalogFile,
		library.WithFs(a.fs),
		library.WithLogger(a.logger),
	)
	if err != nil {
		return nil, err
	}

	a.catalog = cat
	return cat, nil
}

// Shutdown releases application resources. Every catalog change is
// already on disk, so there is nothing to flush; it only logs.
func (a *App) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	opened := a.catalog != nil
	a.mu.Unlock()

	a.logger.Debug().Bool("catalog_opened", opened).Msg("Shutting down")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "nil config", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem the catalog is opened on.
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithCatalog sets an already opened catalog (useful for testing).
func WithCatalog(cat *library.Catalog) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}

// WithIO sets the standard streams used by commands and the menu.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdin, a.stdout, a.stderr = stdin, stdout, stderr
		return nil
	}
}
