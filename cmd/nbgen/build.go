package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dsrlabs/nbgen"
	"github.com/spf13/cobra"
)

var (
	buildOutDir string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [pattern]",
	Short: "Batch-generate notebooks from all plans matching a glob",
	Long: `Generate one notebook per plan file matching a doublestar glob pattern,
e.g. "plans/**/*.yaml". Destinations come from each plan's output field;
with --out-dir, the file name is kept but redirected into that directory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := args[0]

		cwd, err := os.Getwd()
		if err != nil {
			fatal("Failed to get CWD", err)
		}

		paths, err := nbgen.FindPlans(cwd, pattern)
		if err != nil {
			fatal("Failed to discover plans", err)
		}
		if len(paths) == 0 {
			fmt.Printf("No plans match %q\n", pattern)
			return
		}

		service, err := nbgen.New(cwd, nbgen.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize nbgen", err)
		}

		ctx := context.Background()
		for _, path := range paths {
			plan, err := nbgen.LoadPlan(path)
			if err != nil {
				fatal(fmt.Sprintf("Failed to load plan %s", path), err)
			}

			output := ""
			if buildOutDir != "" {
				output = filepath.Join(buildOutDir, filepath.Base(plan.OutputPath()))
			}

			result, err := service.Generate(ctx, plan, output)
			if err != nil {
				fatal(fmt.Sprintf("Failed to generate %s", path), err)
			}
			fmt.Printf("✓ %s → %s (%d cells)\n", path, result.Path, result.Cells)
		}
		fmt.Printf("Generated %d notebooks.\n", len(paths))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildOutDir, "out-dir", "", "Directory to write all notebooks into (must exist)")
}
