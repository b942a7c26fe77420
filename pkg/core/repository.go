package core

import (
	"context"
	"fmt"
)

// Repository defines the contract for persisting assembled notebooks.
// Adhering to this interface keeps the assembler independent of the
// underlying storage mechanism (Filesystem, S3, stdout, etc).
type Repository interface {
	// Save writes the notebook to the destination path, creating or
	// truncating the file. It must fail if the destination directory
	// does not exist rather than writing elsewhere.
	Save(ctx context.Context, path string, nb Notebook) error

	// Initialize ensures the underlying storage is ready (e.g. resolve
	// and verify the root directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can observe plan
// files for changes, so callers can regenerate on edit.
type Watchable interface {
	// Watch emits an event whenever a plan matching pattern changes.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// EventType represents the type of change observed by a watcher.
type EventType string

const (
	EventPlanChange EventType = "PLAN_CHANGE"
	EventPlanRemove EventType = "PLAN_REMOVE"
)

// Event represents an observed change to a plan file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements lifecycle.Event so nbgen events can feed a host
// application's lifecycle manager.
func (e Event) String() string {
	return fmt.Sprintf("%s %s @%d", e.Type, e.Path, e.Timestamp)
}
