package platform

import (
	_ "embed"
	"fmt"

	"github.com/dsrlabs/nbgen/pkg/adapters/fs"
	"github.com/dsrlabs/nbgen/pkg/core"
)

//go:embed assets/video_game_sales.yaml
var defaultPlanYAML []byte

// DefaultPlan returns the bundled Video Game Sales Analysis content plan:
// a 19-cell data-analysis workflow used when no plan file is supplied.
func DefaultPlan() (core.Plan, error) {
	plan, err := fs.ParsePlan(defaultPlanYAML)
	if err != nil {
		return core.Plan{}, fmt.Errorf("embedded plan is corrupt: %w", err)
	}
	return plan, nil
}
