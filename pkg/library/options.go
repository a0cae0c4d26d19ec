package library

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/bookshelf/pkg/logging"
)

// options holds the collaborators of a Catalog.
type options struct {
	fs     afero.Fs
	codec  Codec
	logger *zerolog.Logger
}

// apply applies the given options.
func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// defaults returns the options used when none are given. The codec is
// left nil and chosen from the path in Open.
func defaults() *options {
	return &options{
		fs:     afero.NewOsFs(),
		logger: logging.Default(),
	}
}

// Option configures a Catalog.
type Option func(*options)

// WithFs stores the catalog file on the given filesystem.
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithCodec overrides the extension-based codec choice.
func WithCodec(codec Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

// WithLogger sets the logger used for load and persist diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
