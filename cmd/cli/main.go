package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"clinical-insights-go/internal/aggregator"
	"clinical-insights-go/internal/config"
	"clinical-insights-go/internal/dataset"
	"clinical-insights-go/internal/logger"
	"clinical-insights-go/internal/models"
	"clinical-insights-go/internal/pipeline"
	"clinical-insights-go/internal/types"
)

func main() {
	cfg := config.Load()
	log := logger.New().WithField("service", "clinical-insights-go")

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: clinical-insights <path_to_transcript.txt | transcripts.xlsx>")
		os.Exit(1)
	}
	input := os.Args[1]

	runner := pipeline.New(cfg, models.FromConfig(cfg))
	ctx := context.Background()

	if strings.HasSuffix(strings.ToLower(input), ".xlsx") {
		runBatch(ctx, runner, cfg, input)
		return
	}

	if _, err := runner.Run(ctx, input); err != nil {
		if errors.Is(err, pipeline.ErrInputNotFound) {
			fmt.Fprintf(os.Stderr, "Error: file not found: %s\n", input)
			os.Exit(1)
		}
		log.WithError(err).Error("pipeline failed")
		fmt.Fprintf(os.Stderr, "Error running pipeline: %+v\n", err)
		os.Exit(1)
	}

	fmt.Println("Pipeline completed successfully!")
	fmt.Printf("Outputs saved to: %s/\n", cfg.OutputDir)
}

// runBatch processes every transcript row of a worksheet into its own output
// directory, then writes the aggregate batch summary.
func runBatch(ctx context.Context, runner *pipeline.Runner, cfg config.Config, path string) {
	log := logger.New().WithField("component", "batch").WithField("path", path)

	records, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot read worksheet %s: %v\n", path, err)
		os.Exit(1)
	}

	var results []types.CompleteOutput
	for _, rec := range records {
		log.WithField("record", rec.ID).Info("processing transcript")
		out := runner.RunText(ctx, rec.Transcript)
		results = append(results, out)

		dir := filepath.Join(cfg.OutputDir, rec.ID)
		if err := pipeline.WriteArtifacts(out, dir); err != nil {
			log.WithField("record", rec.ID).WithError(err).Error("failed to write artifacts")
			os.Exit(1)
		}
	}

	insight := aggregator.Aggregate(results)
	summaryPath := filepath.Join(cfg.OutputDir, "batch_summary.json")
	if err := pipeline.WriteJSON(summaryPath, insight); err != nil {
		log.WithError(err).Error("failed to write batch summary")
		os.Exit(1)
	}

	fmt.Printf("Processed %d transcripts.\n", len(records))
	fmt.Printf("Outputs saved to: %s/\n", cfg.OutputDir)
}
