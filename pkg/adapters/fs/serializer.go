package fs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dsrlabs/nbgen/pkg/core"
	"gopkg.in/yaml.v3"
)

// NotebookSerializer encodes and decodes notebooks in the nbformat JSON
// document schema.
type NotebookSerializer struct {
	// Indent is the indentation unit. Notebook tooling conventionally
	// writes a single space.
	Indent string
}

// NewNotebookSerializer creates a serializer with the conventional
// one-space indent.
func NewNotebookSerializer() *NotebookSerializer {
	return &NotebookSerializer{Indent: " "}
}

// Serialize converts the notebook to indented JSON bytes. Output is fully
// deterministic: struct-ordered metadata, no map iteration at the top level,
// HTML escaping disabled so cell text stays readable.
func (s *NotebookSerializer) Serialize(nb core.Notebook) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", s.Indent)
	if err := enc.Encode(nb); err != nil {
		return nil, fmt.Errorf("encode notebook: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads a notebook document from r.
func (s *NotebookSerializer) Parse(r io.Reader) (*core.Notebook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var nb core.Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("invalid notebook json: %w", err)
	}
	if nb.NBFormat != core.NBFormat {
		return nil, fmt.Errorf("unsupported nbformat version: %d", nb.NBFormat)
	}
	return &nb, nil
}

// PlanSerializer encodes and decodes content plans as YAML.
type PlanSerializer struct{}

// Parse reads a plan document from r. Validation is left to the caller so
// partially written plans can still be inspected.
func (s *PlanSerializer) Parse(r io.Reader) (*core.Plan, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var plan core.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan yaml: %w", err)
	}
	return &plan, nil
}

// Serialize converts the plan to YAML bytes.
func (s *PlanSerializer) Serialize(plan core.Plan) ([]byte, error) {
	return yaml.Marshal(plan)
}
