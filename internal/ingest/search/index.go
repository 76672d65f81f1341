// Package search indexes a parsed statement batch so the host
// application can query it by narration, merchant or category before
// committing the import.
package search

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/mapping"

	"github.com/paisatrack/statement-ingest/internal/ingest/normalizer"
	"github.com/paisatrack/statement-ingest/internal/ingest/parser"
)

// Document is the indexed form of one parsed transaction.
type Document struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Merchant    string  `json:"merchant"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
}

// Result is a search hit with its relevance score.
type Result struct {
	Document Document
	Score    float64
}

// Index is an in-memory full-text index over parsed transactions.
type Index struct {
	index     bleve.Index
	sanitizer *normalizer.Sanitizer
	mu        sync.RWMutex
}

// NewIndex creates an empty in-memory index.
func NewIndex() (*Index, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("creating search index: %w", err)
	}
	return &Index{
		index:     index,
		sanitizer: normalizer.NewSanitizer(),
	}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = simple.Name

	keywordFieldMapping := bleve.NewTextFieldMapping()
	keywordFieldMapping.Analyzer = keyword.Name

	numericFieldMapping := bleve.NewNumericFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("date", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("description", textFieldMapping)
	docMapping.AddFieldMappingsAt("merchant", textFieldMapping)
	docMapping.AddFieldMappingsAt("type", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("category", keywordFieldMapping)
	docMapping.AddFieldMappingsAt("amount", numericFieldMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	indexMapping.DefaultAnalyzer = simple.Name
	return indexMapping
}

// IndexBatch indexes every transaction of one parsed document. The
// merchant field is the sanitized narration, so "UPI-SWIGGY BANGALORE"
// is findable as "swiggy".
func (ix *Index) IndexBatch(docID string, txs []parser.Transaction) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	batch := ix.index.NewBatch()
	for i, tx := range txs {
		doc := Document{
			ID:          fmt.Sprintf("%s_%d", docID, i),
			Date:        tx.Date.Format("2006-01-02"),
			Description: tx.Description,
			Merchant:    ix.sanitizer.Sanitize(tx.Description).Normalized,
			Type:        string(tx.Type),
			Category:    tx.Category,
			Amount:      tx.Amount,
		}
		if err := batch.Index(doc.ID, doc); err != nil {
			return fmt.Errorf("indexing transaction %s: %w", doc.ID, err)
		}
	}

	if err := ix.index.Batch(batch); err != nil {
		return fmt.Errorf("executing index batch: %w", err)
	}
	return nil
}

// Search runs a match query over narrations and merchants with one edit
// of typo tolerance.
func (ix *Index) Search(query string, limit int) ([]Result, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	matchQuery := bleve.NewMatchQuery(query)
	matchQuery.SetFuzziness(1)

	searchRequest := bleve.NewSearchRequest(matchQuery)
	searchRequest.Size = limit
	searchRequest.Fields = []string{"*"}

	searchResults, err := ix.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return convertResults(searchResults), nil
}

// SearchByCategory returns transactions carrying the exact category.
func (ix *Index) SearchByCategory(category string, limit int) ([]Result, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}

	termQuery := bleve.NewTermQuery(category)
	termQuery.SetField("category")

	searchRequest := bleve.NewSearchRequest(termQuery)
	searchRequest.Size = limit
	searchRequest.Fields = []string{"*"}

	searchResults, err := ix.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("category search failed: %w", err)
	}
	return convertResults(searchResults), nil
}

func convertResults(searchResults *bleve.SearchResult) []Result {
	results := make([]Result, 0, len(searchResults.Hits))
	for _, hit := range searchResults.Hits {
		doc := Document{ID: hit.ID}

		if v, ok := hit.Fields["date"].(string); ok {
			doc.Date = v
		}
		if v, ok := hit.Fields["description"].(string); ok {
			doc.Description = v
		}
		if v, ok := hit.Fields["merchant"].(string); ok {
			doc.Merchant = v
		}
		if v, ok := hit.Fields["type"].(string); ok {
			doc.Type = v
		}
		if v, ok := hit.Fields["category"].(string); ok {
			doc.Category = v
		}
		switch v := hit.Fields["amount"].(type) {
		case float64:
			doc.Amount = v
		case string:
			doc.Amount, _ = strconv.ParseFloat(v, 64)
		}

		results = append(results, Result{Document: doc, Score: hit.Score})
	}
	return results
}

// Count returns the number of indexed transactions.
func (ix *Index) Count() (uint64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return ix.index.DocCount()
}

// Close releases the index.
func (ix *Index) Close() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.index.Close()
}
