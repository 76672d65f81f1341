package extractor

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PDF extracts the embedded text layer of a PDF statement. Image-only
// PDFs come back empty, which the dispatcher treats as "nothing parsed"
// rather than an error.
type PDF struct{}

func NewPDF() *PDF {
	return &PDF{}
}

// ExtractText reads the text layer of every page.
func (p *PDF) ExtractText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	content, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading pdf text layer: %w", err)
	}

	text, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("reading pdf text layer: %w", err)
	}
	return string(text), nil
}
