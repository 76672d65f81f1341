package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK           = "ok"
	outcomeEmpty        = "empty"
	outcomeUnsupported  = "unsupported"
	outcomeExtractError = "extract_error"
)

var (
	metricDocuments = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statement_ingest",
		Name:      "documents_total",
		Help:      "Documents processed, labelled by extraction kind and outcome.",
	}, []string{"kind", "outcome"})

	metricStrategyWins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "statement_ingest",
		Name:      "strategy_wins_total",
		Help:      "Parsing strategy that produced the accepted result.",
	}, []string{"strategy"})

	metricTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "statement_ingest",
		Name:      "transactions_total",
		Help:      "Transactions emitted after deduplication.",
	})

	metricProcessSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "statement_ingest",
		Name:      "process_duration_seconds",
		Help:      "End-to-end processing time per document.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
	})
)
