package main

import (
	"fmt"

	"github.com/dsrlabs/nbgen"
	"github.com/dsrlabs/nbgen/pkg/core"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [plan]",
	Short: "Validate a content plan",
	Long:  `Load a YAML content plan and check its invariants without writing anything.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := nbgen.LoadPlan(args[0])
		if err != nil {
			fatal("Plan is invalid", err)
		}

		markdown, code := 0, 0
		for _, c := range plan.Cells {
			switch c.Type {
			case core.CellMarkdown:
				markdown++
			case core.CellCode:
				code++
			}
		}

		fmt.Printf("Plan '%s' is valid: %d cells (%d markdown, %d code)\n",
			plan.Name, len(plan.Cells), markdown, code)
		fmt.Printf("Default destination: %s\n", plan.OutputPath())
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
