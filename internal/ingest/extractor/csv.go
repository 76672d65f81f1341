package extractor

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/paisatrack/statement-ingest/internal/ingest/parser"
)

// CSV extracts keyed rows from a comma-separated export. gocsv keys each
// row by its header cell; a separate header read preserves the file's
// column order, which the map form loses.
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

// ExtractRows returns the headers in file order and one keyed row per
// record.
func (c *CSV) ExtractRows(data []byte) ([]string, []parser.Row, error) {
	data = bytes.TrimPrefix(data, []byte("\uFEFF"))

	headers, err := readHeaders(data)
	if err != nil {
		return nil, nil, err
	}

	maps, err := gocsv.CSVToMaps(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv records: %w", err)
	}

	rows := make([]parser.Row, 0, len(maps))
	for _, m := range maps {
		row := make(parser.Row, len(m))
		for k, v := range m {
			row[parser.NormalizeHeader(k)] = v
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func readHeaders(data []byte) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	for i, h := range headers {
		headers[i] = trimCell(h)
	}
	return headers, nil
}

func trimCell(s string) string {
	return strings.TrimSpace(s)
}
