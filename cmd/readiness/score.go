// cmd/readiness/score.go
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readiness-workers/internal/catalog"
	"readiness-workers/internal/models"
	"readiness-workers/internal/scoring"
)

type scoreOptions struct {
	inFile      string
	catalogFile string
	rulesFile   string
	format      string
}

// scoreReport is the score command's output: the results plus the benchmark view.
type scoreReport struct {
	Results    *models.AssessmentResults `json:"results"`
	Comparison scoring.Comparison        `json:"comparison"`
}

func newScoreCmd() *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score an assessment data file",
		Long:  "Scores an assessment data JSON file against the built-in catalog, or against the questions of a catalog CSV, and prints the results with their benchmark comparison.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.inFile, "in", "i", "", "Path to AssessmentData JSON file (required)")
	cmd.Flags().StringVar(&opts.catalogFile, "catalog", "", "Question catalog CSV to score against instead of the built-in catalog")
	cmd.Flags().StringVar(&opts.rulesFile, "rules", "", "Recommendation rules CSV replacing the built-in rules")
	cmd.Flags().StringVarP(&opts.format, "output", "o", formatJSON, "Output format: json or yaml")
	if err := cmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	return cmd
}

func runScore(cmd *cobra.Command, opts *scoreOptions) error {
	content, err := os.ReadFile(opts.inFile)
	if err != nil {
		return fmt.Errorf("failed to read assessment data file: %w", err)
	}
	var data models.AssessmentData
	if err := json.Unmarshal(content, &data); err != nil {
		return fmt.Errorf("failed to unmarshal assessment data JSON: %w", err)
	}

	var engineOpts []scoring.Option
	if opts.catalogFile != "" {
		f, err := os.Open(opts.catalogFile)
		if err != nil {
			return fmt.Errorf("failed to open catalog file: %w", err)
		}
		questions := catalog.ToQuestions(catalog.ParseCatalog(f))
		f.Close()
		if len(questions) == 0 {
			return fmt.Errorf("catalog file %s has no usable questions", opts.catalogFile)
		}
		engineOpts = append(engineOpts, scoring.WithQuestions(questions))
	}
	if opts.rulesFile != "" {
		f, err := os.Open(opts.rulesFile)
		if err != nil {
			return fmt.Errorf("failed to open rules file: %w", err)
		}
		rules, skipped := scoring.ParseRecommendationRules(f)
		f.Close()
		if rules.Len() == 0 {
			return fmt.Errorf("rules file %s has no usable rows (%d skipped)", opts.rulesFile, skipped)
		}
		if skipped > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipped %d unusable rule rows\n", skipped)
		}
		engineOpts = append(engineOpts, scoring.WithRules(rules))
	}

	engine := scoring.NewEngine(engineOpts...)
	results, err := engine.Compute(&data)
	if err != nil {
		return fmt.Errorf("failed to score assessment: %w", err)
	}

	return writeOutput(cmd.OutOrStdout(), opts.format, scoreReport{
		Results:    results,
		Comparison: engine.Benchmarks().CompareToBenchmark(results),
	})
}
