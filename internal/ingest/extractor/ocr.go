package extractor

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// OCR extracts text from scanned statement images through Tesseract.
// A fresh client is created per document: gosseract clients are not safe
// for concurrent use and hold native resources.
type OCR struct {
	language string
}

// NewOCR returns an OCR extractor. language is a Tesseract language code
// ("eng" when empty).
func NewOCR(language string) *OCR {
	if language == "" {
		language = "eng"
	}
	return &OCR{language: language}
}

// ExtractText runs the image through Tesseract and returns the raw text.
func (o *OCR) ExtractText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(o.language); err != nil {
		return "", fmt.Errorf("setting ocr language %q: %w", o.language, err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("loading image into ocr engine: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("running ocr: %w", err)
	}
	return text, nil
}
