// Package storage archives ingested statements: the original document
// bytes plus the parsed result, keyed by document ID.
package storage

import (
	"context"
	"io"
	"time"
)

// Entry contains metadata about an archived document.
type Entry struct {
	DocumentID  string    `json:"document_id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	ArchivedAt  time.Time `json:"archived_at"`
}

// Archive defines the operations on the statement archive.
type Archive interface {
	// Save stores the source document and its parsed result.
	Save(ctx context.Context, documentID, name, contentType string, source, result []byte) (*Entry, error)

	// Source opens the original document bytes.
	Source(ctx context.Context, documentID string) (io.ReadCloser, error)

	// Result returns the stored parse result.
	Result(ctx context.Context, documentID string) ([]byte, error)

	// Info returns metadata for an archived document.
	Info(ctx context.Context, documentID string) (*Entry, error)

	// List returns all archived documents.
	List(ctx context.Context) ([]*Entry, error)

	// Delete removes an archived document.
	Delete(ctx context.Context, documentID string) error
}

// Config holds archive configuration.
type Config struct {
	Path string
}

// New creates the archive implementation for the configuration.
func New(cfg *Config) (Archive, error) {
	path := cfg.Path
	if path == "" {
		path = "./archive"
	}
	return NewLocal(path)
}
