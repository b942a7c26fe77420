package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dsrlabs/nbgen"
	"github.com/dsrlabs/nbgen/pkg/core"
	"github.com/spf13/cobra"
)

var (
	watchOutput string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [plan]",
	Short: "Regenerate a notebook whenever its plan changes",
	Long: `Generate the notebook once, then watch the plan file and regenerate on
every change until interrupted.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planPath, err := filepath.Abs(args[0])
		if err != nil {
			fatal("Failed to resolve plan path", err)
		}

		root := filepath.Dir(planPath)
		pattern := filepath.Base(planPath)

		service, err := nbgen.New(root, nbgen.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to initialize nbgen", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		regenerate := func() {
			plan, err := nbgen.LoadPlan(planPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "plan error: %v\n", err)
				return
			}
			result, err := service.Generate(ctx, plan, watchOutput)
			if err != nil {
				fmt.Fprintf(os.Stderr, "generate error: %v\n", err)
				return
			}
			fmt.Printf("✓ Notebook created: %s\n", result.Path)
			fmt.Printf("✓ Total cells: %d\n", result.Cells)
		}

		regenerate()

		events, err := service.Watch(ctx, pattern)
		if err != nil {
			fatal("Failed to start watcher", err)
		}

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", planPath)
		for event := range events {
			if event.Type == core.EventPlanRemove {
				fmt.Fprintf(os.Stderr, "plan removed: %s\n", event.Path)
				continue
			}
			regenerate()
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Destination path (default: plan's output field)")
}
