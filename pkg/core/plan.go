package core

import (
	"fmt"
)

// PlanCell describes one cell of a content plan: its kind and its logical
// source lines (no trailing newlines).
type PlanCell struct {
	Type   CellType `yaml:"type" json:"type"`
	Source []string `yaml:"source" json:"source"`
}

// Plan is the externally loadable content plan a notebook is assembled from.
// It decouples the literal cell content from the generation logic so the
// plan can be versioned and validated independently.
type Plan struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// Optional kernel overrides. When nil, DefaultMetadata applies.
	Kernelspec   *Kernelspec   `yaml:"kernelspec,omitempty" json:"kernelspec,omitempty"`
	LanguageInfo *LanguageInfo `yaml:"language_info,omitempty" json:"language_info,omitempty"`

	Cells []PlanCell `yaml:"cells" json:"cells"`
}

// Validate checks the plan invariants: at least one cell, every cell of a
// known type with a non-empty source.
func (p Plan) Validate() error {
	if len(p.Cells) == 0 {
		return ErrEmptyPlan
	}
	for i, pc := range p.Cells {
		cell := Cell{Type: pc.Type, Source: pc.Source}
		if err := cell.Validate(); err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
	}
	return nil
}

// OutputPath resolves the default destination for this plan: the explicit
// output field if set, else the plan name with an .ipynb extension, else
// "notebook.ipynb".
func (p Plan) OutputPath() string {
	if p.Output != "" {
		return p.Output
	}
	if p.Name != "" {
		return p.Name + ".ipynb"
	}
	return "notebook.ipynb"
}

// Build assembles the immutable notebook document from the plan.
// Construction cannot fail on a valid plan; all data is literal.
func (p Plan) Build() (Notebook, error) {
	if err := p.Validate(); err != nil {
		return Notebook{}, err
	}

	cells := make([]Cell, 0, len(p.Cells))
	for _, pc := range p.Cells {
		source := make([]string, len(pc.Source))
		copy(source, pc.Source)
		cells = append(cells, Cell{Type: pc.Type, Metadata: Metadata{}, Source: source})
	}

	meta := DefaultMetadata()
	if p.Kernelspec != nil {
		meta.Kernelspec = *p.Kernelspec
	}
	if p.LanguageInfo != nil {
		meta.LanguageInfo = *p.LanguageInfo
	}

	return Notebook{
		Cells:         cells,
		Metadata:      meta,
		NBFormat:      NBFormat,
		NBFormatMinor: NBFormatMinor,
	}, nil
}
