// cmd/readiness/benchmark.go
package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"readiness-workers/internal/scoring"
)

type benchmarkOptions struct {
	industry string
	score    float64
	format   string
}

type benchmarkReport struct {
	Industry        string                    `json:"industry"`
	Score           float64                   `json:"score"`
	Position        int                       `json:"benchmarkPosition"`
	PositionMessage string                    `json:"positionMessage"`
	PositionTone    string                    `json:"positionTone"`
	Benchmark       scoring.IndustryBenchmark `json:"benchmark"`
}

func newBenchmarkCmd() *cobra.Command {
	opts := &benchmarkOptions{}
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Place an overall percentage against an industry benchmark",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.industry, "industry", "", "Industry name; unknown industries use the Other row (required)")
	cmd.Flags().Float64Var(&opts.score, "score", 0, "Overall percentage, 0-100 (required)")
	cmd.Flags().StringVarP(&opts.format, "output", "o", formatJSON, "Output format: json or yaml")
	for _, name := range []string{"industry", "score"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func runBenchmark(cmd *cobra.Command, opts *benchmarkOptions) error {
	if opts.score < 0 || opts.score > 100 {
		return fmt.Errorf("score must be between 0 and 100, got %v", opts.score)
	}
	table := scoring.DefaultBenchmarks()
	position := int(math.Round(table.Position(opts.score, opts.industry)))

	return writeOutput(cmd.OutOrStdout(), opts.format, benchmarkReport{
		Industry:        opts.industry,
		Score:           opts.score,
		Position:        position,
		PositionMessage: scoring.PositionMessage(position),
		PositionTone:    scoring.PositionTone(position),
		Benchmark:       table.Lookup(opts.industry),
	})
}
