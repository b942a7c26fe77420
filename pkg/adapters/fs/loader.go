package fs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dsrlabs/nbgen/pkg/core"
)

// LoadPlan reads a YAML content plan from disk and validates it.
// A missing name defaults to the file name without extension.
func LoadPlan(path string) (core.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return core.Plan{}, err
	}
	defer f.Close()

	plan, err := (&PlanSerializer{}).Parse(f)
	if err != nil {
		return core.Plan{}, fmt.Errorf("parse plan %s: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return core.Plan{}, fmt.Errorf("invalid plan %s: %w", path, err)
	}

	if plan.Name == "" {
		base := filepath.Base(path)
		plan.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return *plan, nil
}

// ParsePlan reads and validates a plan from raw YAML bytes.
// Used for embedded plans that never touch the filesystem.
func ParsePlan(data []byte) (core.Plan, error) {
	plan, err := (&PlanSerializer{}).Parse(bytes.NewReader(data))
	if err != nil {
		return core.Plan{}, err
	}
	if err := plan.Validate(); err != nil {
		return core.Plan{}, err
	}
	return *plan, nil
}

// FindPlans returns the plan files under root matching a doublestar glob
// pattern (e.g. "plans/**/*.yaml"), sorted for deterministic batch runs.
func FindPlans(root, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, fmt.Errorf("bad plan pattern %q: %w", pattern, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(paths)
	return paths, nil
}
