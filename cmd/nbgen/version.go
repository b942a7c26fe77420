package main

import (
	"fmt"
	"strings"

	"github.com/dsrlabs/nbgen"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nbgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nbgen version %s\n", strings.TrimSpace(nbgen.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
