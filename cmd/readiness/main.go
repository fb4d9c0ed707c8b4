// cmd/readiness/main.go
// Command readiness scores assessments and inspects question catalogs offline.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "readiness",
		Short:         "AI readiness assessment tools",
		Long:          "Scores AI readiness assessments, inspects question catalogs and looks up industry benchmark positions without a running workflow engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScoreCmd(), newCatalogCmd(), newBenchmarkCmd())
	return root
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
