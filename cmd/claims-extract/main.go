package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/claims-extract/internal/common"
	"github.com/joseph-ayodele/claims-extract/internal/imaging"
	"github.com/joseph-ayodele/claims-extract/internal/llm/openai"
	"github.com/joseph-ayodele/claims-extract/internal/pipeline"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	"github.com/joseph-ayodele/claims-extract/internal/schema"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file    = flag.String("file", "", "scanned report to extract (pdf, jpg, jpeg or png; required)")
		consent = flag.Bool("consent", false, "treat the file as a single-page consent authority form")
		grouped = flag.Bool("grouped", false, "print the five-way grouped tables instead of the flat row")
		out     = flag.String("out", "", "output JSON file path (defaults to stdout)")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	promptCfg := schema.LoadPromptConfig(cfg.LLM.PromptConfigPath, logger)
	imgOpts := imaging.Options{
		MaxEdge:     cfg.Imaging.MaxEdge,
		JPEGQuality: cfg.Imaging.JPEGQuality,
	}
	processor := pipeline.NewProcessor(client, promptCfg, imgOpts, logger)

	var payload any
	if *consent {
		rec, err := processor.ProcessConsentForm(ctx, *file)
		if err != nil {
			logger.Error("consent form extraction failed", "file", *file, "error", err)
			os.Exit(1)
		}
		payload = rec
	} else {
		agg, err := processor.ProcessFile(ctx, *file)
		if err != nil {
			logger.Error("extraction failed", "file", *file, "error", err)
			os.Exit(1)
		}
		flat := report.Flatten(agg)
		if *grouped {
			payload = report.Group(flat, report.GroupOptions{})
		} else {
			payload = flat
		}
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		logger.Error("failed to encode result", "error", err)
		os.Exit(1)
	}
	if *out == "" {
		fmt.Println(string(b))
		return
	}
	if err := os.WriteFile(*out, b, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("extraction written", "file", *file, "out", *out)
}
