// Package ingest orchestrates the statement pipeline: route a document by
// mime type to an extractor, run the parsing strategy chain over the
// extracted material, then deduplicate the result.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/paisatrack/statement-ingest/internal/ingest/classifier"
	"github.com/paisatrack/statement-ingest/internal/ingest/extractor"
	"github.com/paisatrack/statement-ingest/internal/ingest/parser"
)

// Document is one uploaded statement.
type Document struct {
	ID       string // assigned when empty
	Name     string
	MimeType string
	Data     []byte
}

// Result is the outcome of processing one document. Text carries the raw
// extracted text for text routes; Columns carries the resolved header
// mapping for tabular routes.
type Result struct {
	DocumentID   string               `json:"document_id"`
	Strategy     string               `json:"strategy,omitempty"`
	Text         string               `json:"text,omitempty"`
	Columns      parser.ColumnMap     `json:"columns,omitempty"`
	Transactions []parser.Transaction `json:"transactions"`
}

// ImageTextExtractor extracts text from a scanned image. The OCR engine
// is behind an interface so tests can run without a Tesseract install.
type ImageTextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// TextExtractor extracts embedded text from a document.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// RowExtractor extracts ordered headers and keyed rows from a tabular
// document.
type RowExtractor interface {
	ExtractRows(data []byte) ([]string, []parser.Row, error)
}

// Service runs documents through the ingestion pipeline. Safe for
// concurrent use: all pipeline state is per-call.
type Service struct {
	ocr   ImageTextExtractor
	pdf   TextExtractor
	csv   RowExtractor
	excel RowExtractor

	rows        *parser.Rows
	textChain   *parser.Chain
	walletChain *parser.Chain

	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewService builds a service with the default extractors and the full
// strategy chain. ocrLanguage is a Tesseract language code ("eng" when
// empty).
func NewService(ocrLanguage string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	cls := classifier.New()
	generic := parser.NewGeneric(cls)
	wallet := parser.NewWallet(cls)
	lenient := parser.NewLenient(cls)

	return &Service{
		ocr:   extractor.NewOCR(ocrLanguage),
		pdf:   extractor.NewPDF(),
		csv:   extractor.NewCSV(),
		excel: extractor.NewExcel(),

		rows: parser.NewRows(cls, logger),
		// Wallet exports get their dedicated strategy first; everything
		// else starts strict and loosens.
		textChain:   parser.NewChain(logger, generic, wallet, lenient),
		walletChain: parser.NewChain(logger, wallet, generic, lenient),

		logger: logger,
		tracer: otel.Tracer("statement-ingest"),
		now:    time.Now,
	}
}

// WithOCR replaces the OCR extractor.
func (s *Service) WithOCR(ocr ImageTextExtractor) *Service {
	s.ocr = ocr
	return s
}

// WithPDF replaces the PDF extractor.
func (s *Service) WithPDF(pdf TextExtractor) *Service {
	s.pdf = pdf
	return s
}

// WithClock fixes the reference time used for the date plausibility
// window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Process runs one document through extraction, parsing and dedup. An
// empty transaction list is a valid outcome; errors are reserved for
// unsupported types and extraction failures.
func (s *Service) Process(ctx context.Context, doc Document) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "ingest.Process")
	defer span.End()

	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	start := time.Now()

	kind, err := extractor.Detect(doc.MimeType)
	if err != nil {
		metricDocuments.WithLabelValues(kind.String(), outcomeUnsupported).Inc()
		return nil, err
	}

	span.SetAttributes(
		attribute.String("document.id", doc.ID),
		attribute.String("document.kind", kind.String()),
	)
	log := s.logger.With("document", doc.ID, "kind", kind.String())
	now := s.now()

	res := &Result{DocumentID: doc.ID}

	if kind.Tabular() {
		ext := s.csv
		if kind == extractor.KindExcel {
			ext = s.excel
		}
		headers, rows, err := ext.ExtractRows(doc.Data)
		if err != nil {
			metricDocuments.WithLabelValues(kind.String(), outcomeExtractError).Inc()
			return nil, fmt.Errorf("extracting rows from %s: %w", kind, err)
		}
		res.Transactions, res.Columns = s.rows.Parse(headers, rows, now)
		res.Strategy = "rows"
	} else {
		text, err := s.extractText(ctx, kind, doc.Data)
		if err != nil {
			metricDocuments.WithLabelValues(kind.String(), outcomeExtractError).Inc()
			return nil, fmt.Errorf("extracting text from %s: %w", kind, err)
		}
		res.Text = text
		res.Transactions, res.Strategy = s.parseText(text, now)
	}

	res.Transactions = parser.Dedupe(res.Transactions)

	outcome := outcomeOK
	if len(res.Transactions) == 0 {
		outcome = outcomeEmpty
	}
	metricDocuments.WithLabelValues(kind.String(), outcome).Inc()
	metricTransactions.Add(float64(len(res.Transactions)))
	if res.Strategy != "" && len(res.Transactions) > 0 {
		metricStrategyWins.WithLabelValues(res.Strategy).Inc()
	}
	metricProcessSeconds.Observe(time.Since(start).Seconds())

	log.Info("document processed",
		"strategy", res.Strategy,
		"transactions", len(res.Transactions),
		"duration", time.Since(start))
	return res, nil
}

func (s *Service) extractText(ctx context.Context, kind extractor.Kind, data []byte) (string, error) {
	if kind == extractor.KindImage {
		return s.ocr.ExtractText(ctx, data)
	}
	return s.pdf.ExtractText(data)
}

// parseText picks the chain order: documents carrying wallet header
// markers try the wallet strategy first, everything else escalates from
// the strict generic parse.
func (s *Service) parseText(text string, now time.Time) ([]parser.Transaction, string) {
	chain := s.textChain
	if parser.HasWalletMarkers(text) {
		chain = s.walletChain
	}
	return chain.Run(text, now)
}
