package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/claims-extract/constants"
	"github.com/joseph-ayodele/claims-extract/internal/common"
	"github.com/joseph-ayodele/claims-extract/internal/export"
	"github.com/joseph-ayodele/claims-extract/internal/imaging"
	"github.com/joseph-ayodele/claims-extract/internal/llm/openai"
	"github.com/joseph-ayodele/claims-extract/internal/pipeline"
	"github.com/joseph-ayodele/claims-extract/internal/report"
	repo "github.com/joseph-ayodele/claims-extract/internal/repository"
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
		inmem    = flag.Bool("inmem", false, "use an in-memory SQLite database instead of DB_URL")
		dir      = flag.String("dir", "", "directory of scanned reports to process (required)")
		out      = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		recreate = flag.Bool("force-recreate", false, "drop and recreate the claim tables before importing")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		*out = filepath.Join(filepath.Dir(*dir), "claims.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if cfg.LLM.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	// Open storage: pgx pool against DB_URL, or throwaway SQLite.
	var (
		db      *sql.DB
		pool    *pgxpool.Pool
		dialect repo.Dialect
		err     error
	)
	if *inmem {
		dialect = repo.SQLite
		db, err = repo.OpenSQLite(":memory:", logger)
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required (or pass --inmem)\n")
			os.Exit(1)
		}
		dialect = repo.Postgres
		db, pool, err = repo.Open(ctx, cfg.Database, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(db, pool, logger)

	store, err := repo.NewStore(db, dialect, logger)
	if err != nil {
		logger.Error("failed to build store", "error", err)
		os.Exit(1)
	}
	if err := store.EnsureSchema(ctx, repo.EnsureOptions{ForceRecreate: *recreate}); err != nil {
		logger.Error("failed to ensure schema", "error", err)
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
	processor := pipeline.NewProcessor(client, promptCfg, imaging.Options{
		MaxEdge:     cfg.Imaging.MaxEdge,
		JPEGQuality: cfg.Imaging.JPEGQuality,
	}, logger)

	files, err := listReportFiles(*dir)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("starting batch", "dir", *dir, "files", len(files))

	var reports []*report.AggregateReport
	extractFailures := 0
	for _, path := range files {
		agg, err := processor.ProcessFile(ctx, path)
		if err != nil {
			logger.Error("failed to process file", "file", path, "error", err)
			extractFailures++
			continue
		}
		reports = append(reports, agg)
	}

	stats, err := store.BatchUpsert(ctx, reports, cfg.Batch.Size, report.GroupOptions{})
	if err != nil {
		logger.Error("batch import aborted", "error", err)
		os.Exit(1)
	}

	exportService := export.NewService(logger)
	xlsxBytes, err := exportService.ExportReportsXLSX(reports, report.GroupOptions{})
	if err != nil {
		logger.Error("failed to export reports", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch processing complete",
		"files", len(files),
		"extract_failures", extractFailures,
		"imported", stats.Successful,
		"import_failures", stats.Failed,
		"skipped", stats.Skipped,
		"output_file", *out,
	)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Files scanned: %d\n", len(files))
	fmt.Printf("- Claims imported: %d\n", stats.Successful)
	fmt.Printf("- Import failures: %d\n", stats.Failed)
	fmt.Printf("- Skipped (no reference): %d\n", stats.Skipped)
	fmt.Printf("- Output: %s\n", *out)
}

// listReportFiles returns the processable files directly under dir, sorted
// for deterministic processing order.
func listReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if constants.IsAllowedFile(path) {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files, nil
}
