// cmd/readiness/catalog.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readiness-workers/internal/catalog"
)

type catalogOptions struct {
	csvFile string
	region  string
	unique  bool
	format  string
}

// catalogReport wraps a grouping with its question count.
type catalogReport struct {
	Source        string            `json:"source"`
	Region        string            `json:"region,omitempty"`
	QuestionCount int               `json:"questionCount"`
	Catalog       *catalog.Grouping `json:"catalog"`
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a question catalog grouped by pillar and subcategory",
		Long:  "Parses a question catalog CSV, optionally filtered by region or folded by question text, and prints its grouping. Without --csv the built-in catalog is printed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.csvFile, "csv", "", "Question catalog CSV file")
	cmd.Flags().StringVar(&opts.region, "region", "", "Keep only active questions visible to this region")
	cmd.Flags().BoolVar(&opts.unique, "unique", false, "Fold questions with the same text into one entry")
	cmd.Flags().StringVarP(&opts.format, "output", "o", formatJSON, "Output format: json or yaml")
	cmd.MarkFlagsMutuallyExclusive("region", "unique")
	return cmd
}

func runCatalog(cmd *cobra.Command, opts *catalogOptions) error {
	report := catalogReport{Source: "static"}

	if opts.csvFile == "" {
		report.Catalog = catalog.StaticGrouping()
	} else {
		f, err := os.Open(opts.csvFile)
		if err != nil {
			return fmt.Errorf("failed to open catalog file: %w", err)
		}
		defer f.Close()

		report.Source = opts.csvFile
		switch {
		case opts.region != "":
			report.Region = catalog.NormalizeRegion(opts.region)
			report.Catalog = catalog.ParseCatalogByRegion(f, opts.region)
		case opts.unique:
			report.Catalog = catalog.ParseCatalogUnique(f)
		default:
			report.Catalog = catalog.ParseCatalog(f)
		}
	}

	report.QuestionCount = report.Catalog.Len()
	return writeOutput(cmd.OutOrStdout(), opts.format, report)
}
