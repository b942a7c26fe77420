package fs

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dsrlabs/nbgen/pkg/core"
)

func sampleNotebook() core.Notebook {
	plan := core.Plan{
		Cells: []core.PlanCell{
			{Type: core.CellMarkdown, Source: []string{"# Sample"}},
			{Type: core.CellCode, Source: []string{"flag = sales > median", "print(flag)"}},
		},
	}
	nb, _ := plan.Build()
	return nb
}

func TestNotebookSerializer(t *testing.T) {
	s := NewNotebookSerializer()

	t.Run("Valid Schema", func(t *testing.T) {
		data, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}

		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}

		for _, key := range []string{"cells", "metadata", "nbformat", "nbformat_minor"} {
			if _, ok := doc[key]; !ok {
				t.Errorf("missing top-level key %q", key)
			}
		}
		if doc["nbformat"] != float64(4) || doc["nbformat_minor"] != float64(4) {
			t.Errorf("expected format 4.4, got %v.%v", doc["nbformat"], doc["nbformat_minor"])
		}
	})

	t.Run("One Space Indent", func(t *testing.T) {
		data, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if !strings.Contains(string(data), "\n \"metadata\"") {
			t.Errorf("expected single-space indentation, got:\n%s", data)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		a, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		b, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Error("repeated serialization produced different bytes")
		}
	})

	t.Run("Readable Operators", func(t *testing.T) {
		data, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}
		if !strings.Contains(string(data), "sales > median") {
			t.Error("'>' was HTML-escaped; expected raw operator in cell text")
		}
	})

	t.Run("Parse Roundtrip", func(t *testing.T) {
		data, err := s.Serialize(sampleNotebook())
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}

		nb, err := s.Parse(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(nb.Cells) != 2 {
			t.Fatalf("expected 2 cells, got %d", len(nb.Cells))
		}
		if nb.Cells[1].Text() != "flag = sales > median\nprint(flag)" {
			t.Errorf("cell text mismatch: %q", nb.Cells[1].Text())
		}
		if nb.Metadata.Kernelspec.Name != "python3" {
			t.Errorf("kernel lost in roundtrip: %q", nb.Metadata.Kernelspec.Name)
		}
	})

	t.Run("Rejects Wrong Version", func(t *testing.T) {
		_, err := s.Parse(strings.NewReader(`{"cells": [], "metadata": {}, "nbformat": 3, "nbformat_minor": 0}`))
		if err == nil {
			t.Error("expected error for nbformat 3")
		}
	})
}

func TestPlanSerializer(t *testing.T) {
	s := &PlanSerializer{}

	t.Run("Roundtrip", func(t *testing.T) {
		plan := core.Plan{
			Name:   "demo",
			Output: "demo.ipynb",
			Cells: []core.PlanCell{
				{Type: core.CellMarkdown, Source: []string{"# Demo"}},
				{Type: core.CellCode, Source: []string{"print('hi')"}},
			},
		}

		data, err := s.Serialize(plan)
		if err != nil {
			t.Fatalf("Serialize failed: %v", err)
		}

		parsed, err := s.Parse(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if parsed.Name != "demo" || len(parsed.Cells) != 2 {
			t.Errorf("roundtrip mismatch: %+v", parsed)
		}
		if parsed.Cells[1].Source[0] != "print('hi')" {
			t.Errorf("source mismatch: %q", parsed.Cells[1].Source[0])
		}
	})

	t.Run("Invalid YAML", func(t *testing.T) {
		_, err := s.Parse(strings.NewReader("cells: [\n"))
		if err == nil {
			t.Error("expected error for malformed yaml")
		}
	})
}
