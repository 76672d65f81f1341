package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	entryFile  = "entry.json"
	resultFile = "result.json"
)

// Local implements Archive on the local filesystem. Each document gets a
// directory named by its ID holding the source bytes, the parse result
// and an entry.json with metadata.
type Local struct {
	basePath string
}

// NewLocal creates a local filesystem archive rooted at basePath.
func NewLocal(basePath string) (*Local, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	return &Local{basePath: basePath}, nil
}

// Save stores the source document and its parsed result.
func (l *Local) Save(ctx context.Context, documentID, name, contentType string, source, result []byte) (*Entry, error) {
	if documentID == "" {
		return nil, fmt.Errorf("document id is required")
	}

	docDir := filepath.Join(l.basePath, sanitizeFilename(documentID))
	if err := os.MkdirAll(docDir, 0755); err != nil {
		return nil, fmt.Errorf("creating document directory: %w", err)
	}

	sourcePath := filepath.Join(docDir, "source_"+sanitizeFilename(name))
	if err := os.WriteFile(sourcePath, source, 0644); err != nil {
		return nil, fmt.Errorf("writing source: %w", err)
	}

	if len(result) > 0 {
		if err := os.WriteFile(filepath.Join(docDir, resultFile), result, 0644); err != nil {
			return nil, fmt.Errorf("writing result: %w", err)
		}
	}

	entry := &Entry{
		DocumentID:  documentID,
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(source)),
		ArchivedAt:  time.Now(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling entry: %w", err)
	}
	if err := os.WriteFile(filepath.Join(docDir, entryFile), data, 0644); err != nil {
		return nil, fmt.Errorf("writing entry: %w", err)
	}

	return entry, nil
}

// Source opens the original document bytes.
func (l *Local) Source(ctx context.Context, documentID string) (io.ReadCloser, error) {
	entry, err := l.Info(ctx, documentID)
	if err != nil {
		return nil, err
	}

	docDir := filepath.Join(l.basePath, sanitizeFilename(documentID))
	f, err := os.Open(filepath.Join(docDir, "source_"+sanitizeFilename(entry.Name)))
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	return f, nil
}

// Result returns the stored parse result.
func (l *Local) Result(ctx context.Context, documentID string) ([]byte, error) {
	docDir := filepath.Join(l.basePath, sanitizeFilename(documentID))
	data, err := os.ReadFile(filepath.Join(docDir, resultFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no result archived for %s", documentID)
		}
		return nil, fmt.Errorf("reading result: %w", err)
	}
	return data, nil
}

// Info returns metadata for an archived document.
func (l *Local) Info(ctx context.Context, documentID string) (*Entry, error) {
	docDir := filepath.Join(l.basePath, sanitizeFilename(documentID))
	data, err := os.ReadFile(filepath.Join(docDir, entryFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document not found: %s", documentID)
		}
		return nil, fmt.Errorf("reading entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("parsing entry: %w", err)
	}
	return &entry, nil
}

// List returns all archived documents.
func (l *Local) List(ctx context.Context) ([]*Entry, error) {
	dirs, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("listing archive: %w", err)
	}

	entries := make([]*Entry, 0, len(dirs))
	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}
		entry, err := l.Info(ctx, dir.Name())
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Delete removes an archived document.
func (l *Local) Delete(ctx context.Context, documentID string) error {
	docDir := filepath.Join(l.basePath, sanitizeFilename(documentID))
	if _, err := os.Stat(docDir); os.IsNotExist(err) {
		return fmt.Errorf("document not found: %s", documentID)
	}
	if err := os.RemoveAll(docDir); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// sanitizeFilename removes unsafe characters from filenames
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		"..", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
