package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// CellType identifies the kind of a notebook cell.
type CellType string

const (
	CellMarkdown CellType = "markdown"
	CellCode     CellType = "code"
)

// Metadata represents the flexible key-value pairs associated with a cell or notebook.
type Metadata map[string]any

// Cell is one unit of notebook content.
// Source holds the logical lines of the cell without trailing newlines;
// the nbformat rendering re-attaches a newline to every line but the last,
// so viewers reconstruct the exact multi-line text.
type Cell struct {
	Type     CellType
	Metadata Metadata
	Source   []string
}

// NewMarkdownCell creates a markdown cell from logical lines.
func NewMarkdownCell(lines ...string) Cell {
	return Cell{Type: CellMarkdown, Metadata: Metadata{}, Source: lines}
}

// NewCodeCell creates a code cell from logical lines.
// Cells built here are never executed: no execution count, no outputs.
func NewCodeCell(lines ...string) Cell {
	return Cell{Type: CellCode, Metadata: Metadata{}, Source: lines}
}

// Text returns the cell content as a single string with embedded newlines.
func (c Cell) Text() string {
	return strings.Join(c.Source, "\n")
}

// Validate checks the cell invariants: a known type and a non-empty source.
func (c Cell) Validate() error {
	switch c.Type {
	case CellMarkdown, CellCode:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCellType, c.Type)
	}
	if len(c.Source) == 0 {
		return ErrEmptySource
	}
	return nil
}

// markdownCellJSON is the nbformat shape of a markdown cell.
type markdownCellJSON struct {
	CellType CellType `json:"cell_type"`
	Metadata Metadata `json:"metadata"`
	Source   []string `json:"source"`
}

// codeCellJSON is the nbformat shape of a code cell. ExecutionCount stays
// nil and Outputs stays empty: the generator assembles cells, it never runs them.
type codeCellJSON struct {
	CellType       CellType `json:"cell_type"`
	ExecutionCount *int     `json:"execution_count"`
	Metadata       Metadata `json:"metadata"`
	Outputs        []any    `json:"outputs"`
	Source         []string `json:"source"`
}

// MarshalJSON renders the cell in nbformat shape. Code cells carry
// execution_count (null) and outputs (empty); markdown cells omit both.
func (c Cell) MarshalJSON() ([]byte, error) {
	meta := c.Metadata
	if meta == nil {
		meta = Metadata{}
	}
	source := renderSource(c.Source)

	var payload any
	switch c.Type {
	case CellCode:
		payload = codeCellJSON{
			CellType: CellCode,
			Metadata: meta,
			Outputs:  []any{},
			Source:   source,
		}
	default:
		payload = markdownCellJSON{
			CellType: c.Type,
			Metadata: meta,
			Source:   source,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON reads a cell back from its nbformat shape.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var raw struct {
		CellType CellType `json:"cell_type"`
		Metadata Metadata `json:"metadata"`
		Source   []string `json:"source"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.Type = raw.CellType
	c.Metadata = raw.Metadata
	if c.Metadata == nil {
		c.Metadata = Metadata{}
	}
	c.Source = parseSource(raw.Source)
	return nil
}

// renderSource attaches the nbformat line terminators: every line but the
// last ends with "\n".
func renderSource(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if i < len(lines)-1 {
			out[i] = line + "\n"
		} else {
			out[i] = line
		}
	}
	return out
}

// parseSource strips the nbformat line terminators back off.
func parseSource(raw []string) []string {
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = strings.TrimSuffix(line, "\n")
	}
	return out
}
