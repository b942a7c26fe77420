package nbgen

import (
	"context"
	"log/slog"

	"github.com/dsrlabs/nbgen/internal/platform"
	"github.com/dsrlabs/nbgen/pkg/adapters/fs"
	"github.com/dsrlabs/nbgen/pkg/core"
)

// --- Types ---

// Plan is a public alias for the content plan.
type Plan = core.Plan

// Notebook is a public alias for the assembled document.
type Notebook = core.Notebook

// Cell is a public alias for a single notebook cell.
type Cell = core.Cell

// Result is a public alias for a completed generation.
type Result = core.Result

// --- Configuration ---

// Option defines a functional option for configuring nbgen.
type Option = platform.Option

// WithAutoInit enables automatic creation of the output root directory.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithErrorHandler sets a handler for asynchronous watcher errors.
func WithErrorHandler(handler func(error)) Option {
	return platform.WithErrorHandler(handler)
}

// --- Factory ---

// New creates a notebook assembler service rooted at the given directory.
func New(root string, opts ...Option) (*core.Service, error) {
	return platform.New(root, opts...)
}

// Init initializes a repository explicitly.
func Init(root string, opts ...Option) (core.Repository, error) {
	return platform.Init(root, opts...)
}

// --- Plans ---

// LoadPlan reads and validates a YAML content plan from disk.
func LoadPlan(path string) (core.Plan, error) {
	return fs.LoadPlan(path)
}

// FindPlans returns the plan files under root matching a doublestar glob.
func FindPlans(root, pattern string) ([]string, error) {
	return fs.FindPlans(root, pattern)
}

// DefaultPlan returns the bundled Video Game Sales Analysis plan.
func DefaultPlan() (core.Plan, error) {
	return platform.DefaultPlan()
}

// --- Operations ---

// Generate is a convenience wrapper: assemble the plan and write the
// notebook in one call.
func Generate(ctx context.Context, root string, plan Plan, output string, opts ...Option) (Result, error) {
	svc, err := New(root, opts...)
	if err != nil {
		return Result{}, err
	}
	return svc.Generate(ctx, plan, output)
}
