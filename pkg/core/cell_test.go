package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestCellMarshal(t *testing.T) {
	t.Run("Code Cell Shape", func(t *testing.T) {
		cell := NewCodeCell("import pandas as pd", "import numpy as np")

		data, err := json.Marshal(cell)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}

		if raw["cell_type"] != "code" {
			t.Errorf("expected cell_type 'code', got %v", raw["cell_type"])
		}

		// execution_count must be present and null: the generator never runs cells.
		ec, ok := raw["execution_count"]
		if !ok {
			t.Error("code cell missing execution_count")
		}
		if ec != nil {
			t.Errorf("expected execution_count null, got %v", ec)
		}

		outputs, ok := raw["outputs"].([]any)
		if !ok {
			t.Fatalf("code cell outputs missing or wrong type: %v", raw["outputs"])
		}
		if len(outputs) != 0 {
			t.Errorf("expected empty outputs, got %d entries", len(outputs))
		}

		source, ok := raw["source"].([]any)
		if !ok || len(source) != 2 {
			t.Fatalf("unexpected source: %v", raw["source"])
		}
		if source[0] != "import pandas as pd\n" {
			t.Errorf("first line should carry newline, got %q", source[0])
		}
		if source[1] != "import numpy as np" {
			t.Errorf("last line should not carry newline, got %q", source[1])
		}
	})

	t.Run("Markdown Cell Shape", func(t *testing.T) {
		cell := NewMarkdownCell("# Title")

		data, err := json.Marshal(cell)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}

		if raw["cell_type"] != "markdown" {
			t.Errorf("expected cell_type 'markdown', got %v", raw["cell_type"])
		}
		if _, ok := raw["execution_count"]; ok {
			t.Error("markdown cell must not carry execution_count")
		}
		if _, ok := raw["outputs"]; ok {
			t.Error("markdown cell must not carry outputs")
		}
		if _, ok := raw["metadata"].(map[string]any); !ok {
			t.Errorf("metadata should be an object, got %v", raw["metadata"])
		}
	})

	t.Run("No HTML Escaping", func(t *testing.T) {
		cell := NewCodeCell("a = x > y")

		// Escaping is decided by the outermost encoder; marshal the way
		// the notebook serializer does.
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(cell); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if want := `a = x > y`; !strings.Contains(buf.String(), want) {
			t.Errorf("expected raw %q in output, got %s", want, buf.String())
		}
	})

	t.Run("Roundtrip", func(t *testing.T) {
		orig := NewCodeCell("if recommendations:", "    print('done')")

		data, err := json.Marshal(orig)
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}

		var parsed Cell
		if err := json.Unmarshal(data, &parsed); err != nil {
			t.Fatalf("Unmarshal failed: %v", err)
		}

		if parsed.Type != CellCode {
			t.Errorf("expected code cell, got %s", parsed.Type)
		}
		if parsed.Text() != orig.Text() {
			t.Errorf("text mismatch. want %q, got %q", orig.Text(), parsed.Text())
		}
	})
}

func TestCellValidate(t *testing.T) {
	t.Run("Empty Source", func(t *testing.T) {
		cell := Cell{Type: CellMarkdown}
		if err := cell.Validate(); !errors.Is(err, ErrEmptySource) {
			t.Errorf("expected ErrEmptySource, got %v", err)
		}
	})

	t.Run("Unknown Type", func(t *testing.T) {
		cell := Cell{Type: "raw", Source: []string{"x"}}
		if err := cell.Validate(); !errors.Is(err, ErrUnknownCellType) {
			t.Errorf("expected ErrUnknownCellType, got %v", err)
		}
	})

	t.Run("Valid", func(t *testing.T) {
		if err := NewCodeCell("x = 1").Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestCellText(t *testing.T) {
	cell := NewCodeCell(
		"games = pd.read_csv('./datasets/games.csv')",
		"games_analysis, recommendations = analyze_dataset(games, generate_recs=True)",
	)

	want := "games = pd.read_csv('./datasets/games.csv')\ngames_analysis, recommendations = analyze_dataset(games, generate_recs=True)"
	if cell.Text() != want {
		t.Errorf("Text mismatch.\nwant %q\ngot  %q", want, cell.Text())
	}
}
