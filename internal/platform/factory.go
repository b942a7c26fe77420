package platform

import (
	"context"

	"github.com/dsrlabs/nbgen/pkg/adapters/fs"
	"github.com/dsrlabs/nbgen/pkg/core"
)

// New creates a notebook assembler service rooted at the given directory.
//
//	svc, err := platform.New(".", platform.WithLogger(logger))
func New(root string, opts ...Option) (*core.Service, error) {
	repo, err := Init(root, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.logger), nil
}

// Init initializes a repository explicitly and returns it.
func Init(root string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	autoInit, _ := o.config["auto_init"].(bool)
	errorHandler, _ := o.config["error_handler"].(func(error))

	repo := fs.NewRepository(fs.Config{
		Root:         root,
		AutoInit:     autoInit,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}
