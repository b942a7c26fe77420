package platform

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dsrlabs/nbgen/pkg/core"
)

// stubRepository lets the factory tests verify injection.
type stubRepository struct{}

func (stubRepository) Save(ctx context.Context, path string, nb core.Notebook) error { return nil }
func (stubRepository) Initialize(ctx context.Context) error                          { return nil }

func TestInit(t *testing.T) {
	t.Run("Injected Repository Wins", func(t *testing.T) {
		stub := stubRepository{}
		repo, err := Init("ignored", WithRepository(stub))
		if err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		if repo != core.Repository(stub) {
			t.Error("expected the injected repository back")
		}
	})

	t.Run("Missing Root Fails", func(t *testing.T) {
		if _, err := Init(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("expected error for missing root")
		}
	})

	t.Run("AutoInit Creates Root", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "made")
		if _, err := Init(root, WithAutoInit(true)); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
	})
}

func TestNew(t *testing.T) {
	svc, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	plan := core.Plan{
		Output: "out.ipynb",
		Cells:  []core.PlanCell{{Type: core.CellMarkdown, Source: []string{"# hi"}}},
	}
	result, err := svc.Generate(context.Background(), plan, "")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.Cells != 1 {
		t.Errorf("expected 1 cell, got %d", result.Cells)
	}
}
