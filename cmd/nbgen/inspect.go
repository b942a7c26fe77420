package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dsrlabs/nbgen"
	"github.com/dsrlabs/nbgen/pkg/adapters/fs"
	"github.com/dsrlabs/nbgen/pkg/core"
	"github.com/spf13/cobra"
)

var (
	inspectJSON bool
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show the cell structure of a plan or notebook",
	Long: `Print a cell-by-cell summary of a YAML content plan or an existing
.ipynb notebook. Without an argument, the bundled reference plan is shown.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		nb, err := resolveNotebook(args)
		if err != nil {
			fatal("Failed to read input", err)
		}

		if inspectJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(nb); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for i, cell := range nb.Cells {
			first := ""
			if len(cell.Source) > 0 {
				first = cell.Source[0]
			}
			fmt.Printf("%2d  %-8s  %s\n", i, cell.Type, truncate(first, 60))
		}
		fmt.Printf("\n%d cells, kernel %s, nbformat %d.%d\n",
			len(nb.Cells), nb.Metadata.Kernelspec.Name, nb.NBFormat, nb.NBFormatMinor)
	},
}

// resolveNotebook turns the optional argument into an assembled notebook:
// a .ipynb file is parsed directly, anything else is treated as a plan.
func resolveNotebook(args []string) (core.Notebook, error) {
	if len(args) == 0 {
		plan, err := nbgen.DefaultPlan()
		if err != nil {
			return core.Notebook{}, err
		}
		return plan.Build()
	}

	path := args[0]
	if filepath.Ext(path) == ".ipynb" {
		f, err := os.Open(path)
		if err != nil {
			return core.Notebook{}, err
		}
		defer f.Close()

		nb, err := fs.NewNotebookSerializer().Parse(f)
		if err != nil {
			return core.Notebook{}, err
		}
		return *nb, nil
	}

	plan, err := nbgen.LoadPlan(path)
	if err != nil {
		return core.Notebook{}, err
	}
	return plan.Build()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\t", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "Output the assembled notebook as JSON")
}
