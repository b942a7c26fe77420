package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dsrlabs/nbgen/pkg/core"
)

// Repository implements core.Repository using the local filesystem.
type Repository struct {
	Root       string
	config     Config
	serializer *NotebookSerializer

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	// Root is the base directory relative destinations resolve against.
	Root string
	// AutoInit creates the root directory if it is missing. Destination
	// directories below the root are never created: a missing parent is
	// a hard failure, not a cue to write elsewhere.
	AutoInit bool
	Logger   *slog.Logger
	// ErrorHandler receives asynchronous watcher errors, if set.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	return &Repository{
		Root:       config.Root,
		config:     config,
		serializer: NewNotebookSerializer(),
	}
}

// Initialize resolves and verifies the root directory.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.Root == "" {
		r.Root = "."
	}

	info, err := os.Stat(r.Root)
	if os.IsNotExist(err) {
		if !r.config.AutoInit {
			return fmt.Errorf("output root does not exist: %s", r.Root)
		}
		if err := os.MkdirAll(r.Root, 0755); err != nil {
			return fmt.Errorf("failed to create output root: %w", err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("output root is not a directory: %s", r.Root)
	}
	return nil
}

// Save serializes the notebook and writes it atomically to path.
// Relative paths resolve against the root. The destination's parent
// directory must already exist.
func (r *Repository) Save(ctx context.Context, path string, nb core.Notebook) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dest := r.resolvePath(path)

	dir := filepath.Dir(dest)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("destination directory unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("destination parent is not a directory: %s", dir)
	}

	data, err := r.serializer.Serialize(nb)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(dest, data, 0644); err != nil {
		return err
	}

	r.recordWrite()
	if r.config.Logger != nil {
		r.config.Logger.Debug("notebook persisted", "path", dest, "bytes", len(data))
	}
	return nil
}

// Load reads a notebook document back from path, for inspection.
func (r *Repository) Load(ctx context.Context, path string) (core.Notebook, error) {
	if err := ctx.Err(); err != nil {
		return core.Notebook{}, err
	}

	f, err := os.Open(r.resolvePath(path))
	if err != nil {
		return core.Notebook{}, err
	}
	defer f.Close()

	nb, err := r.serializer.Parse(f)
	if err != nil {
		return core.Notebook{}, err
	}
	return *nb, nil
}

func (r *Repository) resolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.Root, path)
}

func (r *Repository) recordWrite() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastWrite = &now
}
