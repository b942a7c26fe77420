package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dsrlabs/nbgen"
	"github.com/spf13/cobra"
)

var (
	generatePlan   string
	generateOutput string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Assemble a notebook from a content plan",
	Long: `Assemble a notebook document from a YAML content plan and write it as
nbformat 4.4 JSON. Without --plan, the bundled Video Game Sales Analysis
plan is used. Without --output, the plan's own output field decides the
destination. An existing file at the destination is overwritten.`,
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := loadPlanArg(generatePlan)
		if err != nil {
			fatal("Failed to load plan", err)
		}

		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		service, err := nbgen.New(cwd, nbgen.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize nbgen", err)
		}

		result, err := service.Generate(context.Background(), plan, generateOutput)
		if err != nil {
			fatal("Failed to generate notebook", err)
		}

		fmt.Printf("✓ Notebook created: %s\n", result.Path)
		fmt.Printf("✓ Total cells: %d\n", result.Cells)
	},
}

// loadPlanArg resolves the plan source: a file path, or the embedded
// reference plan when empty.
func loadPlanArg(path string) (nbgen.Plan, error) {
	if path == "" {
		return nbgen.DefaultPlan()
	}
	return nbgen.LoadPlan(path)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&generatePlan, "plan", "p", "", "Content plan file (default: bundled reference plan)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Destination path (default: plan's output field)")
}
