package extractor

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/paisatrack/statement-ingest/internal/ingest/parser"
)

// Excel extracts keyed rows from an OOXML workbook. The first sheet is
// read; bank exports rarely carry more than one, and the first non-empty
// row is taken as the header row.
type Excel struct{}

func NewExcel() *Excel {
	return &Excel{}
}

// ExtractRows returns the headers in sheet order and one keyed row per
// data row.
func (e *Excel) ExtractRows(data []byte) ([]string, []parser.Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	headerIdx := -1
	for i, rec := range records {
		if len(rec) > 0 {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil, nil
	}

	headers := make([]string, len(records[headerIdx]))
	for i, h := range records[headerIdx] {
		headers[i] = trimCell(h)
	}

	rows := make([]parser.Row, 0, len(records)-headerIdx-1)
	for _, rec := range records[headerIdx+1:] {
		if len(rec) == 0 {
			continue
		}
		row := make(parser.Row, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[parser.NormalizeHeader(h)] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}
