// Command ingest parses a bank or wallet statement into normalized
// transactions. It prints the result as JSON and can run an ad-hoc search
// over the parsed batch.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paisatrack/statement-ingest/internal/ingest"
	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
	"github.com/paisatrack/statement-ingest/internal/ingest/search"
	"github.com/paisatrack/statement-ingest/pkg/config"
	"github.com/paisatrack/statement-ingest/pkg/money"
	"github.com/paisatrack/statement-ingest/pkg/storage"
)

func main() {
	var (
		filePath = flag.String("file", "", "statement file to ingest (required)")
		mimeType = flag.String("mime", "", "mime type; guessed from the extension when empty")
		query    = flag.String("query", "", "search the parsed transactions after ingestion")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(context.Background(), logger, *filePath, *mimeType, *query); err != nil {
		logger.Error("ingestion failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, filePath, mimeType, query string) error {
	if filePath == "" {
		return fmt.Errorf("-file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Observability.MetricsEnabled {
		go serveMetrics(logger, cfg.Observability.MetricsPort)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filePath, err)
	}
	if len(data) > cfg.Ingest.MaxFileSize {
		return fmt.Errorf("%s exceeds the %d byte limit", filePath, cfg.Ingest.MaxFileSize)
	}

	if mimeType == "" {
		mimeType = guessMime(filePath, cfg.Ingest.DefaultMime)
	}

	svc := ingest.NewService(cfg.Ingest.OCRLanguage, logger)
	res, err := svc.Process(ctx, ingest.Document{
		Name:     filepath.Base(filePath),
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		return err
	}

	printSummary(logger, res, cfg.Ingest.CurrencyCode)

	if cfg.Archive.Enabled {
		if err := archiveResult(ctx, cfg.Archive.Path, filepath.Base(filePath), mimeType, data, res); err != nil {
			logger.Warn("archiving failed", "error", err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if query != "" && cfg.Search.Enabled {
		return runSearch(res, query, cfg.Search.MaxResults)
	}
	return nil
}

// guessMime maps the file extension to the mime types the extractors
// understand.
func guessMime(path, fallback string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "text/csv"
	case ".xls":
		return "application/vnd.ms-excel"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return fallback
	}
}

// printSummary logs income and expense totals for the batch.
func printSummary(logger *slog.Logger, res *ingest.Result, currency string) {
	income := money.Zero(currency)
	expense := money.Zero(currency)
	for _, tx := range res.Transactions {
		amount := money.NewFromFloat(tx.Amount, currency)
		if tx.Type == classifier.TypeIncome {
			income = income.MustAdd(amount)
		} else {
			expense = expense.MustAdd(amount)
		}
	}

	logger.Info("statement ingested",
		"document", res.DocumentID,
		"strategy", res.Strategy,
		"transactions", len(res.Transactions),
		"income", income.Display(),
		"expense", expense.Display())
}

// runSearch indexes the batch in memory and prints matches for the query.
func runSearch(res *ingest.Result, query string, limit int) error {
	ix, err := search.NewIndex()
	if err != nil {
		return fmt.Errorf("building search index: %w", err)
	}
	defer ix.Close()

	if err := ix.IndexBatch(res.DocumentID, res.Transactions); err != nil {
		return fmt.Errorf("indexing transactions: %w", err)
	}

	results, err := ix.Search(query, limit)
	if err != nil {
		return fmt.Errorf("searching %q: %w", query, err)
	}

	for _, r := range results {
		fmt.Printf("%.2f\t%s\t%s\t%s\t%s\n",
			r.Score, r.Document.Date, r.Document.Type, r.Document.Category, r.Document.Description)
	}
	return nil
}

// archiveResult stores the source document and parse result for later
// reprocessing.
func archiveResult(ctx context.Context, path, name, mimeType string, source []byte, res *ingest.Result) error {
	archive, err := storage.New(&storage.Config{Path: path})
	if err != nil {
		return err
	}

	result, err := json.Marshal(res)
	if err != nil {
		return err
	}

	_, err = archive.Save(ctx, res.DocumentID, name, mimeType, source, result)
	return err
}

func serveMetrics(logger *slog.Logger, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics server stopped", "error", err)
	}
}
