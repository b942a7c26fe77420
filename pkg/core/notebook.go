// Notebook is the central entity of the domain.
package core

// Format version tags of the notebook document schema emitted by this package.
const (
	NBFormat      = 4
	NBFormatMinor = 4
)

// Kernelspec identifies which language/runtime a notebook is intended to execute under.
type Kernelspec struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
	Language    string `json:"language" yaml:"language"`
	Name        string `json:"name" yaml:"name"`
}

// LanguageInfo describes the source language of the notebook's code cells.
type LanguageInfo struct {
	Name    string `json:"name" yaml:"name"`
	Version string `json:"version" yaml:"version"`
}

// NotebookMetadata is the fixed top-level metadata record.
// It is a struct, not a map, so serialization order is deterministic.
type NotebookMetadata struct {
	Kernelspec   Kernelspec   `json:"kernelspec" yaml:"kernelspec"`
	LanguageInfo LanguageInfo `json:"language_info" yaml:"language_info"`
}

// Notebook is the top-level document: an ordered sequence of cells wrapped
// with kernel metadata and format version tags. Once assembled it is never
// mutated; it is built once and serialized once.
type Notebook struct {
	Cells         []Cell           `json:"cells"`
	Metadata      NotebookMetadata `json:"metadata"`
	NBFormat      int              `json:"nbformat"`
	NBFormatMinor int              `json:"nbformat_minor"`
}

// DefaultMetadata returns the kernel metadata used when a plan does not
// override it: a Python 3 kernel.
func DefaultMetadata() NotebookMetadata {
	return NotebookMetadata{
		Kernelspec: Kernelspec{
			DisplayName: "Python 3",
			Language:    "python",
			Name:        "python3",
		},
		LanguageInfo: LanguageInfo{
			Name:    "python",
			Version: "3.13.0",
		},
	}
}
