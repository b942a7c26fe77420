package platform

import (
	"log/slog"

	"github.com/dsrlabs/nbgen/pkg/core"
)

// options holds the internal configuration for the nbgen service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	config     map[string]interface{}
}

// Option defines a functional option for configuring nbgen.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		config:     make(map[string]interface{}),
	}
}

// WithAutoInit enables automatic creation of the output root directory.
// Directories below the root are still never created; a notebook whose
// destination directory is missing fails rather than writing elsewhere.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithLogger sets the logger for the service and repository.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock, s3).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithErrorHandler sets a handler for asynchronous watcher errors.
func WithErrorHandler(handler func(error)) Option {
	return func(o *options) {
		o.config["error_handler"] = handler
	}
}
