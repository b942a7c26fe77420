package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// Service is the notebook assembler: it validates a plan, builds the
// document, and persists it through the configured repository.
type Service struct {
	repo   Repository
	logger *slog.Logger

	mu         sync.RWMutex
	generated  int
	lastOutput string
}

// NewService creates a new Service. A nil logger falls back to slog.Default().
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Result describes a completed generation.
type Result struct {
	Path  string
	Cells int
}

// Generate assembles the notebook described by plan and writes it to
// output. An empty output resolves to the plan's default destination.
func (s *Service) Generate(ctx context.Context, plan Plan, output string) (Result, error) {
	if output == "" {
		output = plan.OutputPath()
	}

	nb, err := plan.Build()
	if err != nil {
		return Result{}, err
	}

	if err := s.repo.Save(ctx, output, nb); err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	s.generated++
	s.lastOutput = output
	s.mu.Unlock()

	s.logger.Info("notebook written", "path", output, "cells", len(nb.Cells))
	return Result{Path: output, Cells: len(nb.Cells)}, nil
}

// Watch observes plan changes in the repository if supported.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx, pattern)
}
